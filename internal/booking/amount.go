package booking

import "encoding/json"

// Amount is a request-body money field that clients send either as a
// JSON number or as a free-form string ("1,234.50 KWD").
type Amount string

func (a *Amount) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*a = Amount(n.String())
	return nil
}

// Float parses the amount through the shared normalizer. A nil receiver
// (field absent or null) yields nil.
func (a *Amount) Float() *float64 {
	if a == nil {
		return nil
	}
	return ParseAmount(string(*a))
}
