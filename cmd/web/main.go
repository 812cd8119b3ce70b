package main

import "adira_backend/internal/app"

func main() {
	app.Run()
}
