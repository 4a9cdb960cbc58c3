package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/halehq/hale/internal/advice"
	"github.com/halehq/hale/internal/app"
	"github.com/halehq/hale/internal/store"
	"github.com/halehq/hale/internal/textclass"
)

// runApp builds the resolver, opens the store, and launches the TUI.
// A broken store degrades to a session without history rather than
// refusing to start.
func runApp(cmd *cobra.Command) error {
	res, err := buildResolver()
	if err != nil {
		return err
	}
	opts := app.Options{Resolver: res}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Could not open the check-up log:", err)
		fmt.Fprintln(os.Stderr, "History will be unavailable this session.")
	} else {
		defer st.Close()
		repo, err := st.EventRepo()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Could not prepare the check-up log:", err)
			fmt.Fprintln(os.Stderr, "History will be unavailable this session.")
		} else {
			opts.Events = repo
		}
	}

	return app.Run(opts)
}

// buildResolver loads the embedded catalog and pairs it with a trained
// classifier model.
func buildResolver() (*advice.Resolver, error) {
	cat, err := advice.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("load advice catalog: %w", err)
	}
	return advice.NewResolver(advice.NewStore(cat.Records), loadOrTrainModel(cat)), nil
}

// loadOrTrainModel reuses a cached model when the corpus digest matches,
// otherwise it trains from scratch and refreshes the cache. Cache
// problems never block startup.
func loadOrTrainModel(cat *advice.Catalog) *textclass.Model {
	digest := textclass.DigestOf(cat.Corpus)

	cache, err := textclass.OpenCache("hale")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Model cache unavailable:", err)
		return textclass.Train(cat.Corpus)
	}

	model, ok, err := cache.Load(digest)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Model cache unreadable, retraining:", err)
	}
	if ok {
		return model
	}

	model = textclass.Train(cat.Corpus)
	if err := cache.Save(digest, model); err != nil {
		fmt.Fprintln(os.Stderr, "Could not cache the model:", err)
	}
	return model
}
