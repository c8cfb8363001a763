package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// ProblemType is the discriminant of a problematic-part report.
type ProblemType string

const (
	ProblemDamaged   ProblemType = "damaged"
	ProblemDefective ProblemType = "defective"
	ProblemWrong     ProblemType = "wrong"
)

// RequestReplacement is the requestFromCustomer value that carries a
// replacement shipment.
const RequestReplacement = "Replacement"

func (t ProblemType) String() string { return string(t) }

// IsValid reports whether t is a known problem type.
func (t ProblemType) IsValid() bool {
	switch t {
	case ProblemDamaged, ProblemDefective, ProblemWrong:
		return true
	}
	return false
}

// ProblemCommon holds the fields sent for every problem type. Amounts stay
// as entered; the upstream API owns their interpretation.
type ProblemCommon struct {
	RequestFromCustomer  string   `json:"requestFromCustomer"`
	CustomerRefundAmount string   `json:"customerRefundAmount"`
	RefundStatus         string   `json:"refundStatus"`
	ReturnShippingCost   string   `json:"returnShippingCost"`
	ReturnCarrier        string   `json:"returnCarrier"`
	ReturnTrackingNumber string   `json:"returnTrackingNumber"`
	ProductReturned      bool     `json:"productReturned"`
	Photos               []string `json:"photos"`
	LineItemSKU          string   `json:"lineItemSku"`
	Comments             string   `json:"comments"`
}

// ProblemFields is the type-specific form state as captured by the
// dashboard. Only the group matching the problem type is ever sent.
type ProblemFields struct {
	DefectCategory     string   `json:"defectCategory"`
	DefectDescription  string   `json:"defectDescription"`
	ServiceDocuments   []string `json:"serviceDocuments"`
	WrongMake          string   `json:"wrongMake"`
	WrongModel         string   `json:"wrongModel"`
	WrongYear          string   `json:"wrongYear"`
	WrongPart          string   `json:"wrongPart"`
	WrongSpecification string   `json:"wrongSpecification"`
}

// ProblemDetails is the type-specific part of a report. It is implemented
// only by DamagedDetails, DefectiveDetails and WrongItemDetails.
type ProblemDetails interface {
	ProblemType() ProblemType
	problemDetails()
}

// DamagedDetails carries no extra fields.
type DamagedDetails struct{}

// DefectiveDetails describes a part that arrived but does not work.
type DefectiveDetails struct {
	DefectCategory    string   `json:"defectCategory"`
	DefectDescription string   `json:"defectDescription"`
	ServiceDocuments  []string `json:"serviceDocuments"`
}

// WrongItemDetails describes the part that was actually received.
type WrongItemDetails struct {
	WrongMake          string `json:"wrongMake"`
	WrongModel         string `json:"wrongModel"`
	WrongYear          string `json:"wrongYear"`
	WrongPart          string `json:"wrongPart"`
	WrongSpecification string `json:"wrongSpecification"`
}

func (DamagedDetails) ProblemType() ProblemType   { return ProblemDamaged }
func (DefectiveDetails) ProblemType() ProblemType { return ProblemDefective }
func (WrongItemDetails) ProblemType() ProblemType { return ProblemWrong }

func (DamagedDetails) problemDetails()   {}
func (DefectiveDetails) problemDetails() {}
func (WrongItemDetails) problemDetails() {}

// Replacement describes a replacement shipment sourced from a yard.
type Replacement struct {
	Carrier        string `json:"carrier"`
	TrackingNumber string `json:"trackingNumber"`
	ShippingCost   string `json:"shippingCost"`
	YardName       string `json:"yardName"`
	YardPrice      string `json:"yardPrice"`
	PartPrice      string `json:"partPrice"`
	Status         string `json:"status"`
	Notes          string `json:"notes"`
}

// ProblematicPart is the submission payload for a problematic-part report.
// Details is nil when ProblemType is not a known type.
type ProblematicPart struct {
	OrderID     string
	ProblemType ProblemType
	Common      ProblemCommon
	Details     ProblemDetails
	Replacement *Replacement
}

// problematicPartJSON is the flat wire shape. Nil embedded pointers are
// skipped by encoding/json, so fields of other problem types never appear.
type problematicPartJSON struct {
	OrderID     string      `json:"orderId"`
	ProblemType ProblemType `json:"problemType"`
	ProblemCommon
	*DefectiveDetails
	*WrongItemDetails
	Replacement *Replacement `json:"replacement,omitempty"`
}

func (p ProblematicPart) wire() problematicPartJSON {
	w := problematicPartJSON{
		OrderID:       p.OrderID,
		ProblemType:   p.ProblemType,
		ProblemCommon: p.Common,
		Replacement:   p.Replacement,
	}
	switch d := p.Details.(type) {
	case DefectiveDetails:
		w.DefectiveDetails = &d
	case *DefectiveDetails:
		w.DefectiveDetails = d
	case WrongItemDetails:
		w.WrongItemDetails = &d
	case *WrongItemDetails:
		w.WrongItemDetails = d
	}
	return w
}

func (w problematicPartJSON) part() ProblematicPart {
	p := ProblematicPart{
		OrderID:     w.OrderID,
		ProblemType: w.ProblemType,
		Common:      w.ProblemCommon,
		Replacement: w.Replacement,
	}
	switch w.ProblemType {
	case ProblemDamaged:
		p.Details = DamagedDetails{}
	case ProblemDefective:
		var d DefectiveDetails
		if w.DefectiveDetails != nil {
			d = *w.DefectiveDetails
		}
		p.Details = d
	case ProblemWrong:
		var d WrongItemDetails
		if w.WrongItemDetails != nil {
			d = *w.WrongItemDetails
		}
		p.Details = d
	}
	return p
}

// MarshalJSON encodes the payload in the flat shape expected by the parts API.
func (p ProblematicPart) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.wire())
}

// UnmarshalJSON decodes the flat wire shape, picking details by problemType.
func (p *ProblematicPart) UnmarshalJSON(data []byte) error {
	var w problematicPartJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*p = w.part()
	return nil
}

// ProblematicPartRecord is a stored report as returned by the parts API.
type ProblematicPartRecord struct {
	ID        string
	Part      ProblematicPart
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

type problematicPartRecordJSON struct {
	ID        recordID   `json:"id"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	problematicPartJSON
}

// MarshalJSON encodes the record as the payload plus id and timestamps.
func (r ProblematicPartRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(problematicPartRecordJSON{
		ID:                  recordID(r.ID),
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
		problematicPartJSON: r.Part.wire(),
	})
}

// UnmarshalJSON decodes a record. Both "id" and "_id" are accepted.
func (r *ProblematicPartRecord) UnmarshalJSON(data []byte) error {
	var w struct {
		problematicPartRecordJSON
		MongoID recordID `json:"_id"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	r.ID = string(w.ID)
	if r.ID == "" {
		r.ID = string(w.MongoID)
	}
	r.CreatedAt = w.CreatedAt
	r.UpdatedAt = w.UpdatedAt
	r.Part = w.problematicPartJSON.part()
	return nil
}

// recordID accepts identifiers encoded either as strings or as numbers.
type recordID string

func (id recordID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

func (id *recordID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = recordID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("record id: %w", err)
	}
	*id = recordID(n.String())
	return nil
}
