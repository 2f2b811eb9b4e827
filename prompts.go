package isoagent

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/zenthmed/isoagent/catalog"
)

const analyzeSystemPrompt = `You are an expert in ISO medical device standards.
Analyze the user query and determine if it's asking about:
1. A specific ISO standard number
2. A medical device category
3. A general inquiry about medical standards

Extract any ISO standard numbers mentioned (e.g., ISO 13485, ISO 14971, etc.).`

const searchSystemPrompt = `You create web search queries about ISO medical device standards.

Focus on finding:
- Official ISO standard documents
- Publication dates and current versions
- Scope and application information
- Medical device regulatory information

Return only the search query, nothing else.`

const formatSystemPrompt = `Format the ISO standard information in a clear, structured way for the user.
Use the following format:

**ISO Standard Information**

**Standard:** [ISO Number and Title]
**Topic:** [Main subject area]
**Scope:** [What it covers]
**Product Application:** [Which devices/products]
**Publication Date:** [When published/updated]

**Summary:** [Brief description]

If multiple standards are relevant, list them separately.
Be concise but comprehensive.`

func buildAnalyzeUserPrompt(query string) string {
	return fmt.Sprintf("Query: %s", query)
}

func buildSearchUserPrompt(query string) string {
	var b strings.Builder
	b.WriteString("Create a web search query to find current information about ISO medical device standards based on this user query: ")
	b.WriteString(query)
	return b.String()
}

// buildExtractSystemPrompt combines the full catalog and the search-stage
// output into the expert instructions for the extract stage.
func buildExtractSystemPrompt(records []catalog.Record, searchResults string) string {
	var b strings.Builder
	b.WriteString("You are an ISO medical device standards expert. Based on the user query and web search results, provide detailed information about relevant ISO standards.\n\n")
	b.WriteString("Available standards database: ")
	b.WriteString(serializeRecords(records))
	b.WriteString("\n\nWeb search results: ")
	b.WriteString(searchResults)
	b.WriteString("\n\nFor each relevant standard, provide:\n")
	b.WriteString("1. Topic: What the standard covers\n")
	b.WriteString("2. Scope: The range and boundaries of the standard\n")
	b.WriteString("3. Product Application: Which medical devices/products it applies to\n")
	b.WriteString("4. Publication Date: When it was published/last updated\n\n")
	b.WriteString("Combine information from the database and web search results. If web search indicates newer versions or updates, mention them.\n")
	b.WriteString("If the query mentions a specific ISO number, focus on that. If it's about a device category, suggest relevant standards.\n")
	b.WriteString("If the standard is not in the database, use web search results and your knowledge to provide information.")
	return b.String()
}

func buildExtractUserPrompt(query string) string {
	return fmt.Sprintf("User query: %s", query)
}

func buildFormatUserPrompt(extractedInfo string) string {
	return fmt.Sprintf("Information to format: %s", extractedInfo)
}

// renderSearchResults produces the search-stage output. No real network
// search is performed; the stage emits a fixed guidance block with the
// generated search query prepended for traceability.
func renderSearchResults(searchQuery string) string {
	var b strings.Builder
	b.WriteString("Search query: ")
	b.WriteString(searchQuery)
	b.WriteString("\n\nRecent ISO medical device standards information:\n")
	b.WriteString("- ISO standards are regularly updated and maintained by the International Organization for Standardization\n")
	b.WriteString("- Medical device standards focus on quality management, risk management, and software lifecycle processes\n")
	b.WriteString("- Current versions should be verified through official ISO website or regulatory bodies\n")
	b.WriteString("- Standards may have amendments or technical corrigenda that update requirements\n\n")
	b.WriteString("Note: For most current information, consult official ISO catalog or regulatory guidance documents.")
	return b.String()
}

type serializedRecord struct {
	ID                 string `json:"id"`
	Topic              string `json:"topic"`
	Scope              string `json:"scope"`
	ProductApplication string `json:"product_application"`
	PublicationDate    string `json:"publication_date"`
	Description        string `json:"description"`
}

// serializeRecords renders catalog records as indented JSON for embedding in
// the extract prompt. A slice keeps the catalog's insertion order.
func serializeRecords(records []catalog.Record) string {
	out := make([]serializedRecord, 0, len(records))
	for _, r := range records {
		out = append(out, serializedRecord{
			ID:                 r.ID,
			Topic:              r.Topic,
			Scope:              r.Scope,
			ProductApplication: r.ProductApplication,
			PublicationDate:    r.PublicationDate,
			Description:        r.Description,
		})
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(data)
}
