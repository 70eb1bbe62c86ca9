// main is the entry point of the statgrid CLI.
package main

import (
	"os"

	"github.com/huangsam/statgrid/cmd"
	"github.com/huangsam/statgrid/internal/contract"
	"github.com/huangsam/statgrid/internal/store"
)

func main() {
	cmd.SetStoreManager(store.Manager)

	err := cmd.Execute()
	store.CloseStores()
	if err != nil {
		contract.LogWarn("statgrid failed", err)
		os.Exit(1)
	}
}
