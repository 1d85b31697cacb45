package llm

import "strings"

const analysisPrompt = `You are a professional, unbiased financial analyst.
Analyze the following stock data and provide a concise, 3-point summary of the key trends.
Focus on volatility, the general price trend (up, down, or sideways), and any notable recent price action.
Do not give financial advice.

Data:
{{data}}
`

// BuildAnalysisPrompt embeds a text excerpt of price data in the analyst prompt.
func BuildAnalysisPrompt(data string) string {
	return strings.Replace(analysisPrompt, "{{data}}", strings.TrimRight(data, "\n"), 1)
}
