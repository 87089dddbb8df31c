// @title Fichas API
// @version 1.0
// @description Cadastro de fichas organizadas por status.
// @BasePath /

package main

import (
	"log"

	"fichas-crud/cmd/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
