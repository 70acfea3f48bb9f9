package contract

type UpstreamHealthResponse struct {
	DocStore bool `json:"docstore"`
	RelStore bool `json:"relstore"`
}
