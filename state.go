package isoagent

// pipelineState is the mutable record threaded through the four stages for a
// single query. Each field is written by exactly one stage, in stage order;
// a fresh state is constructed per Answer call and discarded afterwards.
type pipelineState struct {
	query         string
	analysis      string // set by analyze
	searchResults string // set by search
	extractedInfo string // set by extract
	response      string // set by format
}

func newPipelineState(query string) *pipelineState {
	return &pipelineState{query: query}
}

func (st *pipelineState) result() Result {
	return Result{
		Response:      st.response,
		Analysis:      st.analysis,
		SearchResults: st.searchResults,
		ExtractedInfo: st.extractedInfo,
	}
}
