package wikipedia

// Image is a thumbnail or original image reference in a summary.
type Image struct {
	Source string `json:"source"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Summary is the subset of the REST page summary wikicloud uses.
//
// Extract may be empty for pages without a lead section. Thumbnail and
// OriginalImage are nil when the page has no image.
type Summary struct {
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Extract       string `json:"extract"`
	Thumbnail     *Image `json:"thumbnail,omitempty"`
	OriginalImage *Image `json:"originalimage,omitempty"`
}

// apiError is the error object the action API returns with status 200.
type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

type randomResponse struct {
	Error *apiError `json:"error,omitempty"`
	Query struct {
		Random []struct {
			ID    int    `json:"id"`
			NS    int    `json:"ns"`
			Title string `json:"title"`
		} `json:"random"`
	} `json:"query"`
}

type searchResponse struct {
	Error    *apiError `json:"error,omitempty"`
	Continue *struct {
		SROffset int `json:"sroffset"`
	} `json:"continue,omitempty"`
	Query struct {
		Search []struct {
			NS    int    `json:"ns"`
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}
