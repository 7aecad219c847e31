package orders

import "time"

// Order is one laundry job order. Amount is derived at write time from
// the tier price, load count and add-ons; the stored value is what was
// charged even if tier prices change later.
type Order struct {
	OrderID       string    `json:"orderId"`
	OrderDate     time.Time `json:"orderDate"`
	Customer      string    `json:"customer"`
	Contact       string    `json:"contact"`
	Tier          string    `json:"tier"`
	GarmentType   string    `json:"garmentType"`
	Loads         int       `json:"loads"`
	Additionals   float64   `json:"additionals"`
	MiscAmount    float64   `json:"miscAmount"`
	Amount        float64   `json:"amount"`
	PaymentType   string    `json:"paymentType"`
	PaymentStatus string    `json:"paymentStatus"`
	WorkStatus    string    `json:"workStatus"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Supply is one add-on sold with an order, folded into the order's
// notes and additionals amount.
type Supply struct {
	Kind  string  `json:"kind"`
	Brand string  `json:"brand"`
	Price float64 `json:"price"`
}

type CreateInput struct {
	Customer    string   `json:"customer"`
	Contact     string   `json:"contact"`
	Tier        string   `json:"tier"`
	GarmentType string   `json:"garmentType"`
	Loads       int      `json:"loads"`
	Supplies    []Supply `json:"supplies"`
	MiscAmount  float64  `json:"miscAmount"`
	PaymentType string   `json:"paymentType"`
	Paid        bool     `json:"paid"`
	Notes       string   `json:"notes"`
}

// StatusUpdate changes the tracking fields of an existing order without
// touching the priced contents.
type StatusUpdate struct {
	PaymentType   string `json:"paymentType"`
	PaymentStatus string `json:"paymentStatus"`
	WorkStatus    string `json:"workStatus"`
	Notes         string `json:"notes"`
}

// Dashboard is the front-desk snapshot for today.
type Dashboard struct {
	SalesToday   float64 `json:"salesToday"`
	CashToday    float64 `json:"cashToday"`
	GCashToday   float64 `json:"gcashToday"`
	UnpaidTotal  float64 `json:"unpaidTotal"`
	WIPCount     int     `json:"wipCount"`
	ReadyCount   int     `json:"readyCount"`
	OrdersToday  int     `json:"ordersToday"`
	UnpaidOrders int     `json:"unpaidOrders"`
	ClaimedToday int     `json:"claimedToday"`
}
