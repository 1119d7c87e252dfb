package synthesizer

import (
	"fmt"
	"strings"

	"github.com/feral-file/ip-search-agent/internal/metadata"
)

const (
	summaryTemperature       = 0.7
	assetTemperature         = 0.8
	comparisonTemperature    = 0.7
	metadataTemperature      = 0.5
	licensingTemperature     = 0.6
	relationshipsTemperature = 0.6
	suggestionsTemperature   = 0.8
)

const (
	summarySystem       = "You are a helpful AI assistant for IP asset search. Respond in Indonesian."
	assetSystem         = "You are an enthusiastic IP Asset expert who makes blockchain technology exciting and accessible. Always highlight visual content and practical value in Indonesian."
	comparisonSystem    = "You are an IP Asset comparison expert who helps users make informed decisions about IP licensing and usage. Provide detailed analysis in Indonesian."
	metadataSystem      = "You are a technical metadata analyst specializing in Story Protocol's IPA Metadata Standard. Provide detailed technical analysis in Indonesian."
	licensingSystem     = "You are a licensing expert who helps users understand IP licensing terms and make informed decisions. Respond in Indonesian with practical business advice."
	relationshipsSystem = "You are an IP ecosystem analyst who helps users understand complex IP relationships and derivative chains. Provide insights in Indonesian."
	suggestionsSystem   = "You are a search suggestion expert who helps users discover relevant IP assets. Generate practical search suggestions in Indonesian. Always return a JSON array of strings."
)

func summaryPrompt(query string, count int, preview string) string {
	return fmt.Sprintf(`Generate a helpful summary for IP asset search results:

Original Query: %q
Number of Results: %d

Results Preview: %s

Create a friendly, informative summary in Indonesian that:
1. Acknowledges the user's search
2. Mentions how many results were found
3. Highlights key findings or patterns
4. Suggests next steps if relevant

Keep it concise and helpful.`, query, count, preview)
}

func assetPrompt(ipID string, view metadata.PortalView) string {
	var creators strings.Builder
	for _, c := range view.DisplayInfo.Creators {
		fmt.Fprintf(&creators, "- %s (%d%%)\n", c.Name, c.ContributionPercent)
	}
	if creators.Len() == 0 {
		creators.WriteString("- Creator information not available\n")
	}

	return fmt.Sprintf(`Generate a comprehensive, engaging summary for this IP Asset:

BASIC INFO:
- Title: %s
- Description: %s
- IP ID: %s
- Media Type: %s
- Image URL: %s
- Media URL: %s

CREATORS:
%s
LICENSE INFO:
- Commercial Use: %s
- Derivatives: %s
- Minting Fee: %s WIP

MEDIA CONTENT:
- Has Image: %s
- Media Type: %s
- Additional Media: %d files

Create an engaging summary in Indonesian that:
1. Introduces the IP Asset with enthusiasm
2. Highlights the visual/media content available
3. Explains usage rights clearly
4. Provides actionable next steps
5. Mentions how to view the content

Make it sound exciting and valuable!`,
		view.DisplayInfo.Title,
		view.DisplayInfo.Description,
		ipID,
		metadata.DescribeMediaType(view.DisplayInfo.MediaType),
		view.DisplayInfo.Image,
		view.DisplayInfo.MediaURL,
		creators.String(),
		allowed(view.LicenseInfo.CommercialUse),
		allowed(view.LicenseInfo.DerivativesAllowed),
		view.LicenseInfo.MintingFee,
		yesNo(hasImage(view)),
		view.DisplayInfo.MediaType,
		len(view.AdditionalInfo.Media),
	)
}

func comparisonPrompt(assets []*metadata.AssetMetadata) string {
	var b strings.Builder
	b.WriteString("Compare these IP Assets and provide insights:\n")
	for i, asset := range assets {
		view := asset.PortalData
		creator := "Unknown"
		if len(view.DisplayInfo.Creators) > 0 && view.DisplayInfo.Creators[0].Name != "" {
			creator = view.DisplayInfo.Creators[0].Name
		}
		fmt.Fprintf(&b, `
IP ASSET %d:
- Title: %s
- Type: %s
- Media Type: %s
- Commercial Use: %t
- Derivatives: %t
- Parents: %d
- Children: %d
- Is AI Agent: %t
- Creator: %s
`,
			i+1,
			view.DisplayInfo.Title,
			view.AdditionalInfo.IPType,
			view.DisplayInfo.MediaType,
			view.LicenseInfo.CommercialUse,
			view.LicenseInfo.DerivativesAllowed,
			view.RelationshipInfo.ParentCount,
			view.RelationshipInfo.ChildrenCount,
			view.AIInfo.IsAIAgent,
			creator,
		)
	}
	b.WriteString(`
Provide a comparison analysis in Indonesian focusing on:
1. Similarities and differences in content and type
2. Licensing comparison and usage rights
3. Relationship patterns and derivative chains
4. Commercial potential and monetization opportunities
5. Usage recommendations for different scenarios
6. AI Agent capabilities if applicable

Make it practical and actionable for users deciding which IP to use or license.`)
	return b.String()
}

func metadataPrompt(doc string) string {
	return fmt.Sprintf(`Analyze this IP Asset metadata and provide technical insights:

METADATA STRUCTURE:
%s

Provide analysis in Indonesian covering:
1. Metadata completeness and quality
2. Technical implementation details
3. Compliance with IPA Metadata Standard
4. Potential issues or missing fields
5. Recommendations for improvement
6. Integration possibilities

Focus on technical accuracy and practical implementation advice.`, doc)
}

func licensingPrompt(info metadata.LicenseInfo, terms, intent string) string {
	return fmt.Sprintf(`Based on this license information and user intent, provide licensing recommendations:

LICENSE INFO:
- Commercial Use: %t
- Derivatives Allowed: %t
- Minting Fee: %s WIP
- License Terms: %s

USER INTENT: %s

Provide recommendations in Indonesian covering:
1. Suitability for user's intended use case
2. Cost implications and fee structure
3. Rights and restrictions explanation
4. Steps to obtain license
5. Alternative options if available
6. Legal considerations

Make it practical and easy to understand for business users.`,
		info.CommercialUse, info.DerivativesAllowed, info.MintingFee, terms, intent)
}

func relationshipsPrompt(info metadata.RelationshipInfo) string {
	return fmt.Sprintf(`Analyze these IP relationships and provide insights:

RELATIONSHIPS:
- Parents: %d
- Children: %d

PARENT IPs:
%s
CHILD IPs:
%s
Provide insights in Indonesian covering:
1. IP family structure and hierarchy
2. Derivative chain analysis
3. Revenue sharing implications
4. Creative evolution patterns
5. Licensing inheritance
6. Opportunities for further development

Help users understand the IP ecosystem and potential opportunities.`,
		len(info.Parents), len(info.Children), relatedList(info.Parents), relatedList(info.Children))
}

func suggestionsPrompt(searchContext string, history []string) string {
	var recent strings.Builder
	for _, q := range history {
		fmt.Fprintf(&recent, "- %s\n", q)
	}

	return fmt.Sprintf(`Based on the current search context and history, suggest related searches:

CURRENT CONTEXT:
%s

RECENT SEARCH HISTORY:
%s
Generate 5 relevant search suggestions in Indonesian that would help the user discover:
1. Related IP assets
2. Similar creators or themes
3. Different media types of same concept
4. Licensing alternatives
5. Derivative opportunities

Format as a JSON array of search strings.`, searchContext, recent.String())
}

func allowed(b bool) string {
	if b {
		return "Diizinkan ✅"
	}
	return "Tidak Diizinkan ❌"
}

func yesNo(b bool) string {
	if b {
		return "Yes ✅"
	}
	return "No ❌"
}
