package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"priced/pkg/types"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

func apiURL(server, path string) string {
	return strings.TrimSuffix(server, "/") + path
}

func postJSON(server, path string, payload, into any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	resp, err := httpClient.Post(apiURL(server, path), "application/json", bytes.NewReader(b))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decodeResponse(resp, into)
}

func getJSON(server, path string, into any) error {
	resp, err := httpClient.Get(apiURL(server, path))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decodeResponse(resp, into)
}

// decodeResponse decodes the envelope regardless of status; the daemon
// reports failures as {success:false, message} with a mapped status code.
func decodeResponse(resp *http.Response, into any) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, into); err != nil {
		return fmt.Errorf("unexpected response (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

func fnLoad(out io.Writer, server, modelPath, metadataPath string) error {
	var resp types.LoadModelResponse
	req := types.LoadModelRequest{ModelPath: modelPath, MetadataPath: metadataPath}
	if err := postJSON(server, "/api/load_model", req, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("%s", resp.Message)
	}
	fmt.Fprintln(out, resp.Message)
	if resp.ModelInfo != nil {
		fmt.Fprintf(out, "model: %s (loaded %s)\n", resp.ModelInfo.ModelPath, resp.ModelInfo.LoadedAt)
	}
	return nil
}

func fnPredict(out io.Writer, server string, squareFootage, bedrooms, totalBathrooms float64) error {
	var resp types.PredictResponse
	req := types.PredictRequest{
		SquareFootage:  squareFootage,
		Bedrooms:       bedrooms,
		TotalBathrooms: totalBathrooms,
	}
	if err := postJSON(server, "/api/predict", req, &resp); err != nil {
		return err
	}
	if !resp.Success || resp.Result == nil {
		return fmt.Errorf("%s", resp.Message)
	}
	fmt.Fprintf(out, "%s (confidence: %s)\n", resp.Result.FormattedPrice, resp.Result.Confidence)
	return nil
}

func fnInfo(out io.Writer, server string) error {
	var resp types.ModelInfoResponse
	if err := getJSON(server, "/api/model_info", &resp); err != nil {
		return err
	}
	if !resp.Success || resp.ModelInfo == nil {
		return fmt.Errorf("%s", resp.Message)
	}
	info := resp.ModelInfo
	fmt.Fprintf(out, "model:    %s\n", info.ModelPath)
	fmt.Fprintf(out, "type:     %s\n", info.ModelType)
	fmt.Fprintf(out, "loaded:   %s\n", info.LoadedAt)
	fmt.Fprintf(out, "features: %s\n", strings.Join(info.Features, ", "))
	if info.R2Score != nil {
		fmt.Fprintf(out, "r2:       %g\n", *info.R2Score)
	}
	if info.RMSE != nil {
		fmt.Fprintf(out, "rmse:     %g\n", *info.RMSE)
	}
	if info.TrainingSamples != nil {
		fmt.Fprintf(out, "samples:  %d\n", *info.TrainingSamples)
	}
	return nil
}

func fnModels(out io.Writer, server string) error {
	var resp types.ModelsResponse
	if err := getJSON(server, "/api/models", &resp); err != nil {
		return err
	}
	if len(resp.Models) == 0 {
		fmt.Fprintln(out, "no model artifacts found")
		return nil
	}
	for _, m := range resp.Models {
		sidecar := ""
		if m.MetadataPath != "" {
			sidecar = " [+metadata]"
		}
		fmt.Fprintf(out, "%s  %d bytes  %s%s\n", m.Filename, m.Size, m.Modified, sidecar)
	}
	return nil
}
