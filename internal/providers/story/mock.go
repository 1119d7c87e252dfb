package story

import (
	"fmt"
	"time"

	"github.com/feral-file/ip-search-agent/internal/domain"
)

const (
	mockTitle       = "Story Protocol IP Asset"
	mockNFTContract = "0x1234567890123456789012345678901234567890"
	mockTokenID     = "1"
	mockMediaType   = "image/png"
	mockCreatorName = "Story Protocol User"
)

func (c *client) MockAsset(ipID, reason string) domain.AssetResult {
	return MockAsset(ipID, reason, c.clock.Now())
}

// MockAsset builds the demonstration record for ipID.
// The record has no metadata URIs so it is displayed from its inline fields alone.
func MockAsset(ipID, reason string, now time.Time) domain.AssetResult {
	return domain.AssetResult{
		Kind:       domain.AssetKindMock,
		MockReason: reason,
		Record: domain.RawAssetRecord{
			IPID:  ipID,
			Owner: ipID,
			Title: mockTitle,
			Description: fmt.Sprintf("This is a registered IP Asset on Story Protocol with ID %s. "+
				"This asset represents intellectual property that has been tokenized and registered on the blockchain.", ipID),
			NFTContract:      mockNFTContract,
			TokenID:          mockTokenID,
			Image:            domain.PLACEHOLDER_IMAGE_URL,
			MediaURL:         domain.PLACEHOLDER_IMAGE_URL,
			MediaType:        mockMediaType,
			RegistrationDate: now.UTC().Format(time.RFC3339),
			Creators: []domain.Creator{
				{
					Name:                mockCreatorName,
					Address:             ipID,
					ContributionPercent: 100,
				},
			},
		},
	}
}
