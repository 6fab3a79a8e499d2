package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/imagebed/service/internal/auth"
	"github.com/imagebed/service/internal/files"
)

// maxUploadBytes mirrors the gateway's default limit so oversized files are
// rejected before any network traffic.
const maxUploadBytes = 50 * 1024 * 1024

func init() {
	rootCmd.AddCommand(uploadCmd)
}

var uploadCmd = &cobra.Command{
	Use:   "upload FILE...",
	Short: "Upload one or more images",
	Long:  "Uploads images one at a time in argument order and prints the shareable links for each.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Token == "" {
			return fmt.Errorf("not logged in, run \"imgbed login\" first")
		}

		uploaded := 0
		for _, path := range args {
			if err := uploadOne(path); err != nil {
				fmt.Fprintf(os.Stderr, "skipping %s: %v\n", path, err)
				continue
			}
			uploaded++
		}

		if uploaded > 0 {
			if err := saveConfig(); err != nil {
				return err
			}
		}
		if uploaded < len(args) {
			return fmt.Errorf("uploaded %d of %d files", uploaded, len(args))
		}
		return nil
	},
}

func uploadOne(path string) error {
	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}
	if !files.IsSupportedType(contentType) {
		return fmt.Errorf("unsupported file type %q", contentType)
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Size() > maxUploadBytes {
		return fmt.Errorf("file is %dMB, limit is %dMB", info.Size()/(1024*1024), maxUploadBytes/(1024*1024))
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	body, formContentType, err := multipartBody(filepath.Base(path), contentType, f)
	if err != nil {
		return err
	}

	header := http.Header{
		"Content-Type":   []string{formContentType},
		auth.TokenHeader: []string{cfg.Token},
	}
	resp, err := dispatcher().Do(context.Background(), http.MethodPost, "/api/upload", header, body)
	if err != nil {
		return fmt.Errorf("upload request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server rejected upload: %s", readError(resp))
	}

	var result HistoryEntry
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode upload response: %w", err)
	}
	cfg.AddHistory(result)

	fmt.Printf("%s uploaded\n", result.FileName)
	fmt.Printf("  direct:   %s\n", result.URL)
	fmt.Printf("  markdown: ![%s](%s)\n", result.FileName, result.URL)
	fmt.Printf("  html:     <img src=%q alt=%q />\n", result.URL, result.FileName)
	return nil
}

// multipartBody builds the multipart form in memory with an explicit part
// content type, which CreateFormFile cannot set.
func multipartBody(filename, contentType string, r io.Reader) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

// readError extracts the server's error message from a failure response.
func readError(resp *http.Response) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return body.Error
	}
	return fmt.Sprintf("HTTP %d", resp.StatusCode)
}
