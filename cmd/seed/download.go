package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/andresuchdata/cafe-ops/backend-go/internal/storage"
	"github.com/urfave/cli/v2"
)

func newDownloadCommand() *cli.Command {
	return &cli.Command{
		Name:  "download",
		Usage: "Download CSV batches from an S3-compatible bucket into the data directory",
		Flags: []cli.Flag{
			newDataDirFlag(),
			&cli.StringFlag{
				Name:     "bucket-endpoint",
				Usage:    "S3-compatible endpoint host",
				Required: true,
				EnvVars:  []string{"BUCKET_ENDPOINT"},
			},
			&cli.StringFlag{
				Name:     "bucket-access-key",
				Usage:    "Bucket access key",
				Required: true,
				EnvVars:  []string{"BUCKET_ACCESS_KEY"},
			},
			&cli.StringFlag{
				Name:     "bucket-secret-key",
				Usage:    "Bucket secret key",
				Required: true,
				EnvVars:  []string{"BUCKET_SECRET_KEY"},
			},
			&cli.StringFlag{
				Name:     "bucket-name",
				Usage:    "Bucket holding the CSV export batches",
				Required: true,
				EnvVars:  []string{"BUCKET_NAME"},
			},
			&cli.StringFlag{
				Name:    "bucket-region",
				Usage:   "Bucket region",
				EnvVars: []string{"BUCKET_REGION"},
			},
			&cli.BoolFlag{
				Name:    "bucket-use-ssl",
				Usage:   "Connect to the bucket over TLS",
				Value:   true,
				EnvVars: []string{"BUCKET_USE_SSL"},
			},
			&cli.StringFlag{
				Name:    "prefix",
				Usage:   "Object key prefix to fetch",
				Value:   "exports/",
				EnvVars: []string{"BUCKET_PREFIX"},
			},
		},
		Action: runDownload,
	}
}

// runDownload pulls every CSV object under the prefix into the data
// directory, flattening the prefix so the import commands find the batches
// by their plain filenames.
func runDownload(c *cli.Context) error {
	client, err := storage.NewBucketClient(storage.BucketConfig{
		Endpoint:  c.String("bucket-endpoint"),
		AccessKey: c.String("bucket-access-key"),
		SecretKey: c.String("bucket-secret-key"),
		Bucket:    c.String("bucket-name"),
		Region:    c.String("bucket-region"),
		UseSSL:    c.Bool("bucket-use-ssl"),
	})
	if err != nil {
		return err
	}

	prefix := strings.TrimSpace(c.String("prefix"))
	objects, err := client.ListObjects(c.Context, prefix)
	if err != nil {
		return fmt.Errorf("could not list bucket objects for prefix %s: %w", prefix, err)
	}

	dataDir := c.String("data-dir")
	downloaded := 0
	for _, obj := range objects {
		if !strings.HasSuffix(strings.ToLower(obj.Key), ".csv") {
			continue
		}

		destPath := filepath.Join(dataDir, filepath.Base(obj.Key))
		log.Printf("Downloading %s (%d bytes) to %s", obj.Key, obj.Size, destPath)
		if err := client.DownloadObject(c.Context, obj.Key, destPath); err != nil {
			return err
		}
		downloaded++
	}

	if downloaded == 0 {
		return fmt.Errorf("no CSV objects found for prefix %s", prefix)
	}

	log.Printf("Downloaded %d batch file(s) to %s", downloaded, dataDir)
	return nil
}
