package cmd

import (
	"bytes"
	"fmt"
	"os"

	"foodfunk/core/source"
	"foodfunk/core/storage"
	"foodfunk/feature/properties"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportOutput string
	exportUpload bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the effective property tables as TOML",
	Long: `Loads every source, applies the defaults and writes the merged tables as
a TOML property file. With --upload the file replaces the shared storage object.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		db, store := connectOptional(cfg, logg)
		tbls := buildTables(cfg, logg, tableDeps{db: db, store: store})
		svc := properties.NewService(logg, tbls.bindings()...)
		if err := svc.ReloadAll(cmd.Context()); err != nil {
			return err
		}

		data, err := source.EncodeSections(svc.ExportAll())
		if err != nil {
			return err
		}

		if exportUpload {
			if store == nil {
				if store, err = storage.NewClient(cfg.Storage); err != nil {
					return err
				}
			}
			info, err := store.PutObject(cmd.Context(), cfg.Storage.Bucket, cfg.Storage.Object,
				bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{ContentType: "application/toml"})
			if err != nil {
				return fmt.Errorf("failed to upload %s: %w", cfg.Storage.Object, err)
			}
			logg.Info("Uploaded property file", zap.String("bucket", info.Bucket), zap.String("object", info.Key), zap.Int64("size", info.Size))
		}

		if exportOutput == "" || exportOutput == "-" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		return os.WriteFile(exportOutput, data, 0o644)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "-", "file to write, - for stdout")
	exportCmd.Flags().BoolVar(&exportUpload, "upload", false, "upload the result to the storage object")
	RootCmd.AddCommand(exportCmd)
}
