package cli

import "fmt"

type ClearCacheCommand struct{}

func (c *ClearCacheCommand) Execute(_ []string) error {
	log := setupLogger("clear-cache")

	db, documents, err := openDocuments(log)
	if err != nil {
		return err
	}
	defer db.Close()

	count, err := documents.Purge()
	if err != nil {
		return err
	}

	fmt.Printf("Cleared %d cached document(s)\n", count)

	return nil
}
