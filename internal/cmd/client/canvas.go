package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

// BaseURLFunc provides the base HTTP API URL (e.g., from env or flag).
type BaseURLFunc func() string

// NewCanvasCommand constructs the `canvas` command group.
func NewCanvasCommand(baseURL BaseURLFunc) *cobra.Command {
	canvasCmd := &cobra.Command{Use: "canvas", Short: "Canvas operations"}
	canvasCmd.AddCommand(
		newPaintCommand(baseURL),
		newBoardCommand(baseURL),
		newPixelCommand(baseURL),
		newEventsCommand(baseURL),
		newStatsCommand(baseURL),
	)
	return canvasCmd
}

func newPaintCommand(baseURL BaseURLFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paint",
		Short: "Paint one pixel",
		RunE: func(cmd *cobra.Command, _ []string) error {
			x, _ := cmd.Flags().GetInt("x")
			y, _ := cmd.Flags().GetInt("y")
			color, _ := cmd.Flags().GetString("color")
			source, _ := cmd.Flags().GetString("source")
			message, _ := cmd.Flags().GetString("message")

			body := map[string]any{"x": x, "y": y, "color": color}
			if source != "" {
				body["source"] = source
			}
			if message != "" {
				body["message"] = message
			}
			b, _ := json.Marshal(body)
			resp, err := http.Post(baseURL()+"/api/paint", "application/json", bytes.NewReader(b))
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			return printResponse(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().Int("x", 0, "Column, 0-based")
	cmd.Flags().Int("y", 0, "Row, 0-based")
	cmd.Flags().String("color", "", "Hex color like #FF0000")
	cmd.Flags().String("source", "", "Event source (defaults to HUMAN)")
	cmd.Flags().String("message", "", "Optional taunt message")
	_ = cmd.MarkFlagRequired("color")
	return cmd
}

func newBoardCommand(baseURL BaseURLFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Dump the whole board",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return getAndPrint(cmd, baseURL()+"/api/board")
		},
	}
}

func newPixelCommand(baseURL BaseURLFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pixel",
		Short: "Read one pixel",
		RunE: func(cmd *cobra.Command, _ []string) error {
			x, _ := cmd.Flags().GetInt("x")
			y, _ := cmd.Flags().GetInt("y")
			q := url.Values{}
			q.Set("x", fmt.Sprintf("%d", x))
			q.Set("y", fmt.Sprintf("%d", y))
			return getAndPrint(cmd, baseURL()+"/api/pixel?"+q.Encode())
		},
	}
	cmd.Flags().Int("x", 0, "Column, 0-based")
	cmd.Flags().Int("y", 0, "Row, 0-based")
	return cmd
}

func newEventsCommand(baseURL BaseURLFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List recent paint events",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return getAndPrint(cmd, baseURL()+"/api/events/recent")
		},
	}
}

func newStatsCommand(baseURL BaseURLFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show engine stats",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return getAndPrint(cmd, baseURL()+"/api/stats")
		},
	}
}

func getAndPrint(cmd *cobra.Command, url string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return printResponse(cmd.OutOrStdout(), resp)
}

// printResponse pretty-prints a JSON response body, falling back to
// raw output when the body is not JSON.
func printResponse(w io.Writer, resp *http.Response) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, buf.String())
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("server returned %s", resp.Status)
	}
	return nil
}
