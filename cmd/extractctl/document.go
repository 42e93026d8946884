package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/readlee/doc-extractor/constants"
	"github.com/readlee/doc-extractor/internal/common"
	"github.com/readlee/doc-extractor/internal/repository"
	"github.com/readlee/doc-extractor/internal/storage"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage documents",
}

var documentCreateCmd = &cobra.Command{
	Use:   "create <file>",
	Short: "Upload a local file as a new document",
	Long:  "Copy a local file into blob storage, register it as a document, and mark it uploaded. Pass --enqueue to also queue an extraction job.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentCreate,
}

var (
	documentStorageRoot string
	documentEnqueue     bool
)

func init() {
	documentCreateCmd.Flags().StringVar(&documentStorageRoot, "storage-root", "", "Blob storage root directory (defaults to STORAGE_ROOT env var or ./data)")
	documentCreateCmd.Flags().BoolVar(&documentEnqueue, "enqueue", false, "Enqueue an extraction job after upload")

	documentCmd.AddCommand(documentCreateCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentCreate(cmd *cobra.Command, args []string) error {
	path := args[0]
	ext := constants.NormalizeExt(filepath.Ext(path))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return fmt.Errorf("unsupported file extension %q", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return common.WrapError(err, "read file")
	}
	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])

	root := documentStorageRoot
	if root == "" {
		root = os.Getenv("STORAGE_ROOT")
	}
	if root == "" {
		root = "./data"
	}
	store, err := storage.NewFSStore(root, nil)
	if err != nil {
		return common.WrapError(err, "open blob storage")
	}

	ctx := context.Background()
	jobs, docs, cleanup, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	// key is assigned before the blob lands so a crashed upload leaves an
	// uploading row pointing at a missing blob, never an orphaned blob
	key := fmt.Sprintf("%s/%s.%s", time.Now().UTC().Format("2006/01"), uuid.New(), ext)
	doc, err := docs.Create(ctx, repository.CreateDocumentRequest{
		StorageKey:  key,
		Filename:    filepath.Base(path),
		FileExt:     ext,
		FileSize:    len(data),
		ContentHash: &hash,
	})
	if err != nil {
		return common.WrapError(err, "create document")
	}

	if err := store.Put(ctx, key, data); err != nil {
		return common.WrapError(err, "store blob")
	}
	if err := docs.MarkUploaded(ctx, doc.ID); err != nil {
		return common.WrapError(err, "mark uploaded")
	}

	_, _ = fmt.Fprintf(os.Stdout, "Created document %s (%s, %d bytes) at %s\n", doc.ID, doc.Filename, doc.FileSize, key)

	if documentEnqueue {
		job, err := jobs.Enqueue(ctx, doc.ID, constants.JobTypeExtraction, 3)
		if err != nil {
			return common.WrapError(err, "enqueue extraction job")
		}
		_, _ = fmt.Fprintf(os.Stdout, "Enqueued %s job %s\n", job.JobType, job.ID)
	}
	return nil
}
