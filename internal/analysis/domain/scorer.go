// Package domain scores how strongly a query relates to Kenya Revenue
// Authority topics. Search queries that score zero are rejected before any
// gateway call is made.
package domain

import "strings"

// keywords cover KRA services, Kenyan tax obligations, and the revenue
// vocabulary taxpayers actually use.
var keywords = []string{
	"kra", "kenya revenue authority", "tax", "vat", "paye", "income tax",
	"turnover tax", "excise", "itax", "etims", "pin", "compliance",
	"filing", "return", "duty", "customs", "revenue", "taxpayer",
	"withholding", "corporate", "rental", "digital", "service", "kenya",
	"payment", "refund", "audit", "objection", "appeal", "penalty",
}

// Score counts keyword hits in the query, 3 points each.
func Score(query string) int {
	lowered := strings.ToLower(query)
	score := 0
	for _, keyword := range keywords {
		if strings.Contains(lowered, keyword) {
			score += 3
		}
	}
	return score
}

// Relevant reports whether the query touches any KRA topic at all.
func Relevant(query string) bool {
	return Score(query) > 0
}
