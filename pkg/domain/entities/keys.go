package entities

// Key selectors extract an ordered comparison key from a record for
// sorting and searching. Date keys are exposed as Unix epochs so
// chronological order rides integer order.

// ByItemName keys a record by its supply item name.
func ByItemName(r *ConsumptionRecord) string { return string(r.ItemName) }

// ByQuantity keys a record by its consumed quantity.
func ByQuantity(r *ConsumptionRecord) int64 { return int64(r.Quantity) }

// ByConsumptionDate keys a record by the date the consumption was recorded.
func ByConsumptionDate(r *ConsumptionRecord) int64 { return r.ConsumptionDate.Unix() }

// ByExpirationDate keys a record by the expiration date of the consumed lot.
func ByExpirationDate(r *ConsumptionRecord) int64 { return r.ExpirationDate.Unix() }
