// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gcs uploads generated reports to Google Cloud Storage.
package gcs

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/storage"
)

// Upload writes data to the object named by dst, which must have the
// form "gs://bucket/object". Credentials come from the environment's
// application default credentials.
func Upload(ctx context.Context, dst string, data []byte) error {
	bucket, object, err := parseDst(dst)
	if err != nil {
		return err
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	w := client.Bucket(bucket).Object(object).NewWriter(ctx)
	w.ContentType = "text/markdown; charset=utf-8"
	if _, err := w.Write(data); err != nil {
		w.Close()
		return err
	}
	// The object is not committed until Close succeeds.
	return w.Close()
}

func parseDst(dst string) (bucket, object string, err error) {
	rest, ok := strings.CutPrefix(dst, "gs://")
	if !ok {
		return "", "", fmt.Errorf("destination %q is not a gs:// URL", dst)
	}
	bucket, object, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || object == "" {
		return "", "", fmt.Errorf("destination %q must name a bucket and an object", dst)
	}
	return bucket, object, nil
}
