// Package storage implements domain.ObjectStore on Supabase Storage (through
// its S3-compatible endpoint) and on the local filesystem for development.
package storage

import (
	"fmt"
	"strings"
)

// PublicURLPrefix returns the prefix under which objects of bucket are publicly
// served: <baseURL>/storage/v1/object/public/<bucket>.
func PublicURLPrefix(baseURL, bucket string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s", strings.TrimSuffix(baseURL, "/"), bucket)
}

func publicURL(prefix, path string) string {
	return prefix + "/" + path
}
