package domain

const (
	// Gateway constants
	DEFAULT_IPFS_GATEWAY    = "https://ipfs.io"
	DEFAULT_ARWEAVE_GATEWAY = "https://arweave.net"

	// Registry constants
	DEFAULT_STORY_API_URL      = "https://api.storyapis.com/api/v4"
	DEFAULT_STORY_EXPLORER_URL = "https://aeneid.explorer.story.foundation"

	// EXAMPLE_IP_ID is a known registered asset (Official Ippy) used in user-facing suggestions
	EXAMPLE_IP_ID = "0xB1D831271A68Db5c18c8F0B69327446f7C8D0A42"

	// Display fallbacks
	PLACEHOLDER_IMAGE_URL   = "https://via.placeholder.com/400x400/6366f1/ffffff?text=Story+Protocol+IP"
	UNKNOWN_MEDIA_TYPE      = "unknown"
	DEFAULT_IP_TYPE         = "digital-asset"
	DEFAULT_APP_NAME        = "Story Protocol"
	DEFAULT_MINTING_FEE     = "0"
	MAX_RECENT_TRANSACTIONS = 5

	// Query constants
	DEFAULT_SEARCH_LIMIT  = 20
	MAX_FALLBACK_TAGS     = 5
	MIN_FALLBACK_TAG_LEN  = 4
	FALLBACK_QUERY_INTENT = "General IP asset search"
)
