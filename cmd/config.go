package main

import "time"

type Config struct {
	MongoURI        string        `env:"MONGO_URI,default=mongodb://localhost:27017/"`
	MongoDatabase   string        `env:"MONGO_DATABASE,default=recipe_db"`
	MongoCollection string        `env:"MONGO_COLLECTION,default=recipes"`
	MongoTimeout    time.Duration `env:"MONGO_TIMEOUT,default=5s"`
	ExportPath      string        `env:"EXPORT_PATH,default=recipes_backup.json"`
	LogLevel        string        `env:"LOG_LEVEL,default=ERROR"`
	Colours         bool          `env:"COLOURS,default=true"`
}
