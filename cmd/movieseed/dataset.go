package main

import (
	"archive/zip"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// MovieLens titles carry the release year, e.g. "Heat (1995)".
var yearSuffix = regexp.MustCompile(`\s*\(\d{4}(?:[–-]\d{0,4})?\)\s*$`)

func downloadAndExtract(ctx context.Context, zipURL string) (string, func(), error) {
	if zipURL == "" {
		return "", func() {}, errors.New("dataset url is empty")
	}

	tmpDir, err := os.MkdirTemp("", "movielens-")
	if err != nil {
		return "", func() {}, err
	}

	cleanup := func() {
		_ = os.RemoveAll(tmpDir)
	}

	zipPath := filepath.Join(tmpDir, "dataset.zip")
	if err := downloadFile(ctx, zipURL, zipPath); err != nil {
		cleanup()
		return "", func() {}, err
	}

	csvPath, err := extractMoviesCSV(zipPath, tmpDir)
	if err != nil {
		cleanup()
		return "", func() {}, err
	}

	return csvPath, cleanup, nil
}

func downloadFile(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	return err
}

func extractMoviesCSV(zipPath, destDir string) (string, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return "", err
	}
	defer r.Close()

	for _, file := range r.File {
		if !strings.HasSuffix(file.Name, "movies.csv") {
			continue
		}

		src, err := file.Open()
		if err != nil {
			return "", err
		}
		defer src.Close()

		destPath := filepath.Join(destDir, filepath.Base(file.Name))
		out, err := os.Create(destPath)
		if err != nil {
			return "", err
		}

		if _, err := io.Copy(out, src); err != nil {
			_ = out.Close()
			return "", err
		}
		if err := out.Close(); err != nil {
			return "", err
		}

		return destPath, nil
	}

	return "", errors.New("movies.csv not found in zip")
}

// readTitles returns up to limit distinct titles from the "title" column,
// with the trailing year removed. A limit of 0 reads the whole file.
func readTitles(csvPath string, limit int) ([]string, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return parseTitles(file, limit)
}

func parseTitles(r io.Reader, limit int) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	idxTitle := -1
	for i, name := range header {
		if strings.TrimSpace(name) == "title" {
			idxTitle = i
		}
	}
	if idxTitle == -1 {
		return nil, errors.New("missing title column in csv header")
	}

	seen := make(map[string]struct{})
	var titles []string
	for limit <= 0 || len(titles) < limit {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return titles, err
		}
		if idxTitle >= len(record) {
			continue
		}

		title := cleanTitle(record[idxTitle])
		if title == "" {
			continue
		}
		if _, ok := seen[strings.ToLower(title)]; ok {
			continue
		}
		seen[strings.ToLower(title)] = struct{}{}
		titles = append(titles, title)
	}

	return titles, nil
}

func cleanTitle(raw string) string {
	return strings.TrimSpace(yearSuffix.ReplaceAllString(strings.TrimSpace(raw), ""))
}
