package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"ptra/config"
	"ptra/database"
	"ptra/migrator"
	"ptra/sqldump"
)

// timestampWriter prefixes every log line with an ISO-8601 timestamp, the
// line format the previous migration tooling wrote to migrator.log.
type timestampWriter struct {
	w io.Writer
}

func (t timestampWriter) Write(p []byte) (int, error) {
	if _, err := fmt.Fprintf(t.w, "%s - %s", time.Now().Format(time.RFC3339), p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func main() {
	os.Exit(run())
}

func run() int {
	dumpPath := flag.String("sql", "", "path to the legacy SQL dump (overrides config)")
	dbPath := flag.String("db", "", "path to the target SQLite database (overrides config)")
	logPath := flag.String("log", "", "path to the migration log file (overrides config)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("WARN: Failed to load config file: %v. Using defaults.", err)
		cfg = config.Defaults()
	}
	if *dumpPath != "" {
		cfg.DumpPath = *dumpPath
	}
	if *dbPath != "" {
		cfg.DatabasePath = *dbPath
	}
	if *logPath != "" {
		cfg.LogPath = *logPath
	}

	sinks := []io.Writer{os.Stdout}
	logFile, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Printf("WARN: Could not open log file %s: %v. Logging to stdout only.", cfg.LogPath, err)
	} else {
		defer logFile.Close()
		sinks = append(sinks, logFile)
	}
	log.SetFlags(0)
	log.SetOutput(timestampWriter{w: io.MultiWriter(sinks...)})

	log.Println("Starting migration...")

	dump, err := sqldump.ReadDump(cfg.DumpPath, cfg.DumpEncoding)
	if err != nil {
		log.Printf("Failed to read SQL dump: %v", err)
		return 1
	}
	log.Println("SQL dump read successfully.")

	db, err := sqlx.Open("sqlite3", cfg.DatabasePath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		log.Printf("Failed to open database %s: %v", cfg.DatabasePath, err)
		return 1
	}
	defer func() {
		db.Close()
		log.Println("Database connection closed.")
	}()
	if err := db.Ping(); err != nil {
		log.Printf("Failed to connect to database %s: %v", cfg.DatabasePath, err)
		return 1
	}
	log.Printf("Connected to database %s.", cfg.DatabasePath)

	if err := database.ApplySchema(db); err != nil {
		log.Printf("Failed to apply schema: %v", err)
		return 1
	}

	if err := migrator.Run(db, dump); err != nil {
		log.Println("--- MIGRATION FAILED ---")
		log.Printf("Error: %v", err)
		log.Println("Transaction rolled back, no data was changed.")
		return 1
	}

	log.Println("--- MIGRATION SUCCEEDED ---")
	migrator.LogSummary(db)
	return 0
}
