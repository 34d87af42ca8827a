package telegram

type LabeledPrice struct {
	Label  *string `json:"label,omitempty"`
	Amount *int    `json:"amount,omitempty"`
}

type Invoice struct {
	Title          *string `json:"title,omitempty"`
	Description    *string `json:"description,omitempty"`
	StartParameter *string `json:"start_parameter,omitempty"`
	Currency       *string `json:"currency,omitempty"`
	TotalAmount    *int    `json:"total_amount,omitempty"`
}

type ShippingAddress struct {
	CountryCode *string `json:"country_code,omitempty"`
	State       *string `json:"state,omitempty"`
	City        *string `json:"city,omitempty"`
	StreetLine1 *string `json:"street_line1,omitempty"`
	StreetLine2 *string `json:"street_line2,omitempty"`
	PostCode    *string `json:"post_code,omitempty"`
}

type OrderInfo struct {
	Name            *string          `json:"name,omitempty"`
	PhoneNumber     *string          `json:"phone_number,omitempty"`
	Email           *string          `json:"email,omitempty"`
	ShippingAddress *ShippingAddress `json:"shipping_address,omitempty"`
}

type ShippingOption struct {
	ID     *string        `json:"id,omitempty"`
	Title  *string        `json:"title,omitempty"`
	Prices []LabeledPrice `json:"prices,omitempty"`
}

type SuccessfulPayment struct {
	Currency                *string    `json:"currency,omitempty"`
	TotalAmount             *int       `json:"total_amount,omitempty"`
	InvoicePayload          *string    `json:"invoice_payload,omitempty"`
	ShippingOptionID        *string    `json:"shipping_option_id,omitempty"`
	OrderInfo               *OrderInfo `json:"order_info,omitempty"`
	TelegramPaymentChargeID *string    `json:"telegram_payment_charge_id,omitempty"`
	ProviderPaymentChargeID *string    `json:"provider_payment_charge_id,omitempty"`
}

// ShippingQuery is an incoming shipping query for a flexible-price invoice.
type ShippingQuery struct {
	ID              *string          `json:"id,omitempty"`
	From            *User            `json:"from,omitempty"`
	InvoicePayload  *string          `json:"invoice_payload,omitempty"`
	ShippingAddress *ShippingAddress `json:"shipping_address,omitempty"`
}

// PreCheckoutQuery asks the bot to confirm a checkout.
type PreCheckoutQuery struct {
	ID               *string    `json:"id,omitempty"`
	From             *User      `json:"from,omitempty"`
	Currency         *string    `json:"currency,omitempty"`
	TotalAmount      *int       `json:"total_amount,omitempty"`
	InvoicePayload   *string    `json:"invoice_payload,omitempty"`
	ShippingOptionID *string    `json:"shipping_option_id,omitempty"`
	OrderInfo        *OrderInfo `json:"order_info,omitempty"`
}
