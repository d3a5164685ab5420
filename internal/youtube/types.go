package youtube

// Typed slices of the YouTube Data API v3 responses. Only the fields the
// portal reads are declared; everything else in the payload is ignored at
// decode time so internal code never touches the raw shapes.

type thumbnail struct {
	URL string `json:"url"`
}

type snippet struct {
	Title       string `json:"title"`
	ChannelID   string `json:"channelId"`
	PublishedAt string `json:"publishedAt"`
	Thumbnails  struct {
		Medium  thumbnail `json:"medium"`
		Default thumbnail `json:"default"`
	} `json:"thumbnails"`
}

type searchItem struct {
	ID struct {
		VideoID   string `json:"videoId"`
		ChannelID string `json:"channelId"`
	} `json:"id"`
	Snippet snippet `json:"snippet"`
}

type searchResponse struct {
	Items []searchItem `json:"items"`
}

type channelItem struct {
	ID      string  `json:"id"`
	Snippet snippet `json:"snippet"`
}

type channelListResponse struct {
	Items []channelItem `json:"items"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
