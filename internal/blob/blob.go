// Package blob selects a blob storage driver and layers star snapshot
// archives on top of it.
package blob

import (
	"context"
	"fmt"
	"os"

	"starcore/internal/blob/core"
	"starcore/internal/infra/blob/fs"
	"starcore/internal/infra/blob/memory"
	"starcore/internal/infra/blob/s3"
)

type (
	// Driver identifies a blob backend driver.
	Driver = core.Driver
	// PutOptions configures a blob write.
	PutOptions = core.PutOptions
	// SignedURLOptions configures URL pre-signing.
	SignedURLOptions = core.SignedURLOptions
	// Info describes stored blob metadata.
	Info = core.Info
	// Store is the interface for blob storage backends.
	Store = core.Store
)

const (
	// DriverFilesystem is the local filesystem driver.
	DriverFilesystem = core.DriverFilesystem
	// DriverS3 is the S3-compatible driver.
	DriverS3 = core.DriverS3
	// DriverMemory is the in-memory test driver.
	DriverMemory = core.DriverMemory
)

// ErrUnsupported indicates an operation isn't supported by a driver.
var ErrUnsupported = core.ErrUnsupported

// Open selects a Store implementation using environment variables.
//
//	STARCORE_BLOB_DRIVER: fs|s3|memory (default fs)
//	STARCORE_BLOB_FS_ROOT: directory root when driver=fs (default ./blobdata)
//	(S3 variables are documented in the s3 driver package.)
func Open(ctx context.Context) (Store, error) {
	driver := os.Getenv("STARCORE_BLOB_DRIVER")
	if driver == "" {
		driver = string(DriverFilesystem)
	}
	switch Driver(driver) {
	case DriverFilesystem:
		return fs.New(os.Getenv("STARCORE_BLOB_FS_ROOT"))
	case DriverS3:
		return s3.OpenFromEnv(ctx)
	case DriverMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown blob driver %s", driver)
	}
}
