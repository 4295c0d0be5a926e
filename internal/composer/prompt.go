// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package composer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/sourabhsharmaaa/first-class-genai/internal/dataset"
	"github.com/sourabhsharmaaa/first-class-genai/internal/filter"
)

const systemPrompt = "You are a helpful local food guide. You only respond in JSON."

const instructions = `
Based on this data, provide customized, engaging recommendations for ALL the restaurants provided above.
You MUST output strictly valid JSON. Do NOT output just one restaurant. Output a JSON object containing a global 'summary' text, followed by an array of objects for EVERY restaurant in the retrieved data.

The 'summary' field MUST be a highly detailed, conversational paragraph (2-3 sentences) that explicitly NAMES the top restaurants being recommended. It must specifically mention the user's requested location, cuisines, and pricing, summarizing why these specific places are great choices altogether. Do NOT provide a generic summary.

Use the following format:
{
  "summary": "You're in for a treat in Basavanagudi with Mysuru Coffee Thindi and 36th Cross Coffee Mane, two fantastic spots that serve up delicious coffee at budget-friendly prices...",
  "restaurants": [
    {
      "id": 1,
      "name": "Restaurant 1",
      "rating": 4.5,
      "costForTwo": "800",
      "address": "123 Food Street, Jayanagar",
      "cuisines": "South Indian, Cafe",
      "aiReason": "A detailed, engaging 3-4 sentence explanation of why this restaurant is a great match for the user's specific location, cuisine, price, and rating preferences. Be highly specific and persuasive."
    },
    {
      "id": 2,
      "name": "Restaurant 2",
      "rating": 4.2,
      "costForTwo": "1200",
      "address": "456 Main Road, Indiranagar",
      "cuisines": "Italian, Continental",
      "aiReason": "A detailed, engaging 3-4 sentence explanation of why this restaurant is a great match for the user's specific location, cuisine, price, and rating preferences. Be highly specific and persuasive."
    }
  ]
}
Keep the output strictly as JSON.
`

// buildPrompt lists every record and the active preferences.
func buildPrompt(records []dataset.Restaurant, prefs filter.Preferences) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert food critic and local guide. User preferences: %s.\n\n", describePreferences(prefs))
	b.WriteString("Top restaurants retrieved from our database:\n\n")
	for _, r := range records {
		fmt.Fprintf(&b, "- Name: %s, Rating: %s, Cost: %s, Loc: %s, Address: %s, Cuisine: %s\n",
			orDefault(r.Name, "Unknown"),
			formatRating(r.Rate),
			formatCost(r.CostForTwo, "Unknown Price"),
			orDefault(r.Location, "Unknown Location"),
			orDefault(r.Address, "Unknown Address"),
			orDefault(r.Cuisines, "Unknown Cuisine"),
		)
	}
	b.WriteString(instructions)
	return b.String()
}

// describePreferences renders the active constraints as a JSON object with
// sorted keys.
func describePreferences(p filter.Preferences) string {
	active := map[string]any{}
	if p.Location != "" {
		active["location"] = p.Location
	}
	if p.Cuisine != "" {
		active["cuisine"] = p.Cuisine
	}
	if p.MaxPrice != nil {
		active["max_price"] = *p.MaxPrice
	}
	if p.MinRating != nil {
		active["min_rating"] = *p.MinRating
	}
	if p.MaxRating != nil {
		active["max_rating"] = *p.MaxRating
	}
	b, err := json.Marshal(active)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func formatRating(rate *float64) string {
	if rate == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*rate, 'f', -1, 64)
}

func formatCost(cost *float64, unknown string) string {
	if cost == nil {
		return unknown
	}
	return strconv.FormatFloat(*cost, 'f', -1, 64)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
