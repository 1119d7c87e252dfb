package interpreter

import "fmt"

const (
	parseTemperature = 0.3
	parseSystem      = "You are an expert at parsing search queries for intellectual property assets. Always return valid JSON."
)

func parsePrompt(input string) string {
	return fmt.Sprintf(`Parse the following user query for IP asset search and extract structured parameters:

User Query: %q

Extract and return a JSON object with these fields:
- query: main search terms
- mediaType: image, audio, video, text, or null
- license: open use, commercial, non-commercial, derivatives, or null
- creator: creator name if mentioned, or null
- tags: array of relevant tags
- intent: brief description of what user is looking for
- isIdentifier: boolean - true if input looks like an IP asset ID (0x followed by 40 hex characters)

Example:
Input: "saya mencari gambar kucing lucu, lisensi open use"
Output: {"query": "kucing lucu", "mediaType": "image", "license": "open use", "creator": null, "tags": ["kucing", "lucu", "funny"], "intent": "Looking for funny cat images with open use license", "isIdentifier": false}

Example identifier:
Input: "0xB1D831271A68Db5c18c8F0B69327446f7C8D0A42"
Output: {"query": "0xB1D831271A68Db5c18c8F0B69327446f7C8D0A42", "mediaType": null, "license": null, "creator": null, "tags": [], "intent": "Looking for specific IP Asset by ID", "isIdentifier": true}

Return only valid JSON:`, input)
}
