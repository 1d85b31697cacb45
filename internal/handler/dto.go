package handler

import "stockviz/internal/chart"

type ChartsResponse struct {
	Charts []chart.Spec `json:"charts"`
}

type VisualizeResponse struct {
	Charts   []chart.Spec `json:"charts"`
	FileName string       `json:"fileName"`
}

type AnalysisResponse struct {
	Analysis string `json:"analysis"`
	Model    string `json:"model"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Dataset string `json:"dataset"`
}
