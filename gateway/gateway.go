// Package gateway is the hosted-payment-provider client. The provider owns
// the checkout UI; this side only creates payment sessions and checks
// transaction outcomes by reference.
package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
)

// SessionResponse represents the provider's create/check payload.
type SessionResponse struct {
	Order struct {
		Ref    string `json:"ref"`
		URL    string `json:"url"`
		Status struct {
			Code int    `json:"code"` // 3 = Paid
			Text string `json:"text"`
		} `json:"status"`
	} `json:"order"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// StatusPaid is the provider's transaction-status code for a settled payment.
const StatusPaid = 3

// Customer is the billing information forwarded to the hosted checkout.
type Customer struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	City     string
	Country  string
	Postcode string
}

// config picks the production endpoint; sandbox/dev mode flags the session
// as a test transaction on the same endpoint.
func config() (storeID int, authKey, apiURL string, testMode int, err error) {
	storeID, _ = strconv.Atoi(os.Getenv("GATEWAY_STORE_ID"))
	authKey = os.Getenv("GATEWAY_AUTH_KEY")
	apiURL = os.Getenv("GATEWAY_API_URL")
	testMode = 0

	mode := os.Getenv("GATEWAY_MODE")
	if mode == "sandbox" || mode == "dev" {
		testMode = 1
	}

	if storeID == 0 || authKey == "" || apiURL == "" {
		return 0, "", "", 0, fmt.Errorf("payment gateway configuration missing")
	}
	return storeID, authKey, apiURL, testMode, nil
}

func call(payload map[string]interface{}) (*SessionResponse, error) {
	_, _, apiURL, _, err := config()
	if err != nil {
		return nil, err
	}

	jsonData, _ := json.Marshal(payload)

	req, _ := http.NewRequest(http.MethodPost, apiURL, bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach payment gateway: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway API error (%d): %s", resp.StatusCode, string(body))
	}

	var parsed SessionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse gateway response: %v", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("gateway error: %s", parsed.Error.Message)
	}
	return &parsed, nil
}

// CreateSession asks the provider for a hosted-checkout session. orderRef is
// the join key between our order and the provider's transaction. Returns the
// hosted checkout URL and the provider's transaction reference.
func CreateSession(orderRef string, amount float64, currency, description string, customer Customer) (paymentURL, paymentRef string, err error) {
	storeID, authKey, _, testMode, err := config()
	if err != nil {
		return "", "", err
	}

	payload := map[string]interface{}{
		"method":  "create",
		"store":   storeID,
		"authkey": authKey,
		"order": map[string]interface{}{
			"cartid":      orderRef,
			"test":        testMode,
			"amount":      fmt.Sprintf("%.2f", amount),
			"currency":    currency,
			"description": description,
		},
		"customer": map[string]interface{}{
			"name":  customer.Name,
			"email": customer.Email,
			"phone": customer.Phone,
			"address": map[string]string{
				"line1":    customer.Address,
				"city":     customer.City,
				"country":  customer.Country,
				"postcode": customer.Postcode,
			},
		},
		"return": map[string]string{
			"authorised": os.Getenv("GATEWAY_SUCCESS_URL"),
			"declined":   os.Getenv("GATEWAY_FAILURE_URL"),
			"cancelled":  os.Getenv("GATEWAY_CANCEL_URL"),
		},
	}

	resp, err := call(payload)
	if err != nil {
		return "", "", err
	}
	if resp.Order.URL == "" {
		return "", "", fmt.Errorf("gateway returned empty payment URL")
	}
	return resp.Order.URL, resp.Order.Ref, nil
}

// CheckTransaction performs the single best-effort verification call: did
// the transaction behind paymentRef settle? A non-paid status is not an
// error; the order just stays pending.
func CheckTransaction(paymentRef string) (bool, error) {
	storeID, authKey, _, _, err := config()
	if err != nil {
		return false, err
	}

	resp, err := call(map[string]interface{}{
		"method":  "check",
		"store":   storeID,
		"authkey": authKey,
		"order": map[string]interface{}{
			"ref": paymentRef,
		},
	})
	if err != nil {
		return false, err
	}
	return resp.Order.Status.Code == StatusPaid, nil
}
