package main

import "github.com/biggeezerdevelopment/digitfreq/internal/app"

func main() { app.Main(app.RunContext) }
