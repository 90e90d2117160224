package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/modelrun-ai/modelrun-go/modelrun"
	"github.com/modelrun-ai/modelrun-go/modelrun/models"
	"github.com/modelrun-ai/modelrun-go/modelrun/pagination"
	"github.com/modelrun-ai/modelrun-go/modelrun/predictions"
)

const modelRef = "stability-ai/sdxl"

func main() {
	godotenv.Load()

	ctx := context.Background()

	// Create client (MODELRUN_API_TOKEN from environment)
	client, err := modelrun.NewClient(
		modelrun.WithPollInterval(2 * time.Second),
	)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	fmt.Printf("Connected to Modelrun at %s\n\n", client.BaseURL())

	// === Path 1: ListHardware - Discover available hardware ===
	fmt.Println("=== 1. ListHardware: Available hardware ===")
	hardware, err := client.ListHardware(ctx)
	if err != nil {
		log.Fatalf("Failed to list hardware: %v", err)
	}
	for _, h := range hardware {
		fmt.Printf("  - %s (%s)\n", h.Name, h.SKU)
	}

	// === Path 2: Models().Get - Look up a model ===
	fmt.Println("\n=== 2. Models().Get: Looking up a model ===")
	model, err := client.Models().Get(ctx, modelRef)
	if err != nil {
		if modelrun.IsNotFound(err) {
			log.Fatalf("Model %s does not exist", modelRef)
		}
		log.Fatalf("Failed to get model: %v", err)
	}
	printModel(model)

	// === Path 3: Versions - List and inspect model versions ===
	fmt.Println("\n=== 3. Versions: Listing model versions ===")
	versionPage, err := model.Versions().List(ctx, pagination.FirstPage())
	if err != nil {
		log.Fatalf("Failed to list versions: %v", err)
	}
	fmt.Printf("  Found %d versions on the first page:\n", len(versionPage.Results))
	for i, v := range versionPage.Results {
		if i >= 3 {
			fmt.Println("    ...")
			break
		}
		fmt.Printf("    - %s\n", v.ID)
	}

	// === Path 4: Models().List - Paginate through public models ===
	fmt.Println("\n=== 4. Models().List: Paginating public models ===")
	page, err := client.Models().List(ctx, pagination.FirstPage())
	if err != nil {
		log.Fatalf("Failed to list models: %v", err)
	}
	fmt.Printf("  First page has %d models\n", len(page.Results))
	if cursor, ok := page.NextCursor(); ok {
		next, err := client.Models().List(ctx, cursor)
		if err != nil {
			log.Fatalf("Failed to fetch next page: %v", err)
		}
		fmt.Printf("  Second page has %d models\n", len(next.Results))
	} else {
		fmt.Println("  (no more pages)")
	}

	// === Path 5: Predictions().Create and Wait - Run a prediction ===
	fmt.Println("\n=== 5. Predictions().Create: Running a prediction ===")
	pred, err := client.Predictions().Create(ctx, model.LatestVersion.ID, map[string]any{
		"prompt": "a watercolor painting of two dogs playing in a park",
	})
	if err != nil {
		log.Fatalf("Failed to create prediction: %v", err)
	}
	fmt.Printf("  Created prediction %s (status: %s)\n", pred.ID, pred.Status)

	if err := pred.Wait(ctx); err != nil {
		log.Fatalf("Failed while waiting: %v", err)
	}
	printPrediction(pred)

	// === Path 6: Predictions().Get and Progress - Inspect a prediction ===
	fmt.Println("\n=== 6. Predictions().Get: Re-fetching by ID ===")
	fetched, err := client.Predictions().Get(ctx, pred.ID)
	if err != nil {
		log.Fatalf("Failed to get prediction: %v", err)
	}
	if progress := fetched.Progress(); progress != nil {
		fmt.Printf("  Progress: %.0f%% (%d/%d)\n", progress.Percentage*100, progress.Current, progress.Total)
	} else {
		fmt.Println("  No progress information in logs")
	}

	// === Path 7: OutputIterator - Stream incremental output ===
	fmt.Println("\n=== 7. OutputIterator: Streaming output ===")
	streaming, err := client.Predictions().Create(ctx, model.LatestVersion.ID, map[string]any{
		"prompt": "write a short poem about gradient descent",
	}, predictions.WithStream(true))
	if err != nil {
		log.Fatalf("Failed to create streaming prediction: %v", err)
	}

	it := streaming.OutputIterator(ctx)
	for it.Next() {
		fmt.Printf("%v", it.Current())
	}
	if err := it.Err(); err != nil {
		if modelrun.IsModelError(err) {
			fmt.Printf("\n  Model failed mid-run: %v\n", err)
		} else {
			log.Fatalf("Streaming failed: %v", err)
		}
	}
	fmt.Println()

	// === Path 8: Cancel - Stop a running prediction ===
	fmt.Println("\n=== 8. Cancel: Cancelling a prediction ===")
	doomed, err := client.Predictions().Create(ctx, model.LatestVersion.ID, map[string]any{
		"prompt": "a mural that takes a very long time to paint",
	})
	if err != nil {
		log.Fatalf("Failed to create prediction: %v", err)
	}
	if err := doomed.Cancel(ctx); err != nil {
		log.Fatalf("Failed to cancel: %v", err)
	}
	fmt.Printf("  Prediction %s is now %q\n", doomed.ID, doomed.Status)

	// === Path 9: Predictions().List - Recent predictions for this account ===
	fmt.Println("\n=== 9. Predictions().List: Recent predictions ===")
	recent, err := client.Predictions().List(ctx, pagination.FirstPage())
	if err != nil {
		log.Fatalf("Failed to list predictions: %v", err)
	}
	for i, p := range recent.Results {
		if i >= 5 {
			fmt.Println("    ...")
			break
		}
		fmt.Printf("    - %s [%s]\n", p.ID, p.Status)
	}

	// === Path 10: Run - The one-call convenience path ===
	fmt.Println("\n=== 10. Run: One-call model execution ===")
	output, err := client.Run(ctx, fmt.Sprintf("%s:%s", modelRef, model.LatestVersion.ID), map[string]any{
		"prompt": "a pencil sketch of a sailboat",
	})
	if err != nil {
		log.Fatalf("Run failed: %v", err)
	}
	fmt.Printf("  Output: %v\n", output)

	fmt.Println("\n=== All operations completed successfully! ===")
}

func printModel(m *models.Model) {
	fmt.Printf("  Name:        %s\n", m.Ref())
	fmt.Printf("  Visibility:  %s\n", m.Visibility)
	fmt.Printf("  Runs:        %d\n", m.RunCount)
	if m.Description != "" {
		desc := m.Description
		if len(desc) > 60 {
			desc = desc[:60] + "..."
		}
		fmt.Printf("  Description: %s\n", desc)
	}
	if m.LatestVersion != nil {
		fmt.Printf("  Latest:      %s\n", m.LatestVersion.ID)
	}
}

func printPrediction(p *predictions.Prediction) {
	fmt.Printf("  Status:      %s\n", p.Status)
	if p.StartedAt != nil && p.CompletedAt != nil {
		fmt.Printf("  Duration:    %s\n", p.CompletedAt.Sub(*p.StartedAt))
	}
	if p.Error != "" {
		fmt.Printf("  Error:       %s\n", p.Error)
	}
	if p.Output != nil {
		fmt.Printf("  Output:      %v\n", p.Output)
	}
}
