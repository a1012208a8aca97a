package main

import (
	"cvf/cmd"
	"log"

	_ "github.com/lib/pq"
)

func main() {
	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	err = apiHandler.StartApi(8000)
	if err != nil {
		log.Fatal(err)
	}
}
