package internal

import (
	"log"
	"sispay/entity"
	"sispay/services"
	"time"
)

// Logger writes leveled messages to stdout and, when a database is attached,
// mirrors them to the log collection.
type Logger struct {
	name  string
	debug bool
	db    services.Database
}

func NewLogger(name string, debug bool, db services.Database) *Logger {
	return &Logger{
		name:  name,
		debug: debug,
		db:    db,
	}
}

func (l *Logger) Debug(message string) {
	if !l.debug {
		return
	}
	l.write("DEBUG", message, nil)
}

func (l *Logger) Info(message string) {
	l.write("INFO", message, nil)
}

func (l *Logger) Warn(message string) {
	l.write("WARN", message, nil)
}

func (l *Logger) Error(message string, err error) {
	l.write("ERROR", message, err)
}

func (l *Logger) write(level, message string, err error) {
	if err != nil {
		log.Printf("%s: %s: %s; %v", l.name, level, message, err)
	} else {
		log.Printf("%s: %s: %s", l.name, level, message)
	}
	if l.db == nil {
		return
	}
	record := &entity.LogMessage{
		Time:   time.Now(),
		Level:  level,
		Source: l.name,
		Text:   message,
	}
	if err != nil {
		record.Error = err.Error()
	}
	if dbErr := l.db.WriteLogMessage(record); dbErr != nil {
		log.Printf("%s: ERROR: write log message; %v", l.name, dbErr)
	}
}
