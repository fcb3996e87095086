package http

import (
	"strings"

	"multilingual-support/internal/support"
)

// --- Request DTOs ---

type queryReq struct {
	Text              string  `json:"text"`
	PreferredLanguage *string `json:"preferred_language"`
}

func (r queryReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return support.ErrEmptyQuery
	}
	return nil
}

func (r queryReq) toInput() support.ProcessQueryInput {
	in := support.ProcessQueryInput{Text: r.Text}
	if r.PreferredLanguage != nil {
		in.PreferredLanguage = *r.PreferredLanguage
	}
	return in
}

// --- Response DTOs ---

type queryResp struct {
	Query              string  `json:"query"`
	DetectedLanguage   string  `json:"detected_language"`
	LanguageConfidence float64 `json:"language_confidence"`
	Intent             string  `json:"intent"`
	IntentConfidence   float64 `json:"intent_confidence"`
	Response           string  `json:"response"`
}

func (h *handler) newQueryResp(out support.QueryResult) queryResp {
	return queryResp{
		Query:              out.Query,
		DetectedLanguage:   out.DetectedLanguage,
		LanguageConfidence: out.LanguageConfidence,
		Intent:             out.Intent,
		IntentConfidence:   out.IntentConfidence,
		Response:           out.Response,
	}
}

type listResp struct {
	Items []string `json:"items"`
}

func (h *handler) newListResp(items []string) listResp {
	if items == nil {
		items = []string{}
	}
	return listResp{Items: items}
}

// legacyErrorResp is the error body of the unversioned routes.
type legacyErrorResp struct {
	Detail string `json:"detail"`
}
