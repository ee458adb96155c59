package metadomain

type Campaign struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Objective string `json:"objective"`
}

type AdSet struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	BillingEvent string `json:"billing_event"`
}

type Ad struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Status   string         `json:"status"`
	AdSetID  string         `json:"adset_id"`
	Creative *AdCreativeRef `json:"creative,omitempty"`
}

// AdCreativeRef é a referência ao criativo devolvida em /{ad}?fields=creative
type AdCreativeRef struct {
	ID string `json:"id"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}
