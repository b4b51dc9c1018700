package main

// @title Meals on Heels API
// @version 1.0
// @description Find San Francisco food trucks near a location, nearest first.

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:8000
// @BasePath /
