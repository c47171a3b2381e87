// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmapi

import (
	"context"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

// Cloud wraps the /cloud endpoints, only available on Mattermost Cloud
// workspaces. All of them require manage_system.
type Cloud struct{ resource }

func (c *Cloud) GetLimits(ctx context.Context) (*Response, error) {
	return c.do(ctx, mmclient.GET, c.url("limits"), nil, mmclient.AttachNone)
}

func (c *Cloud) GetProducts(ctx context.Context) (*Response, error) {
	return c.do(ctx, mmclient.GET, c.url("products"), nil, mmclient.AttachNone)
}

// CreateCustomerPayment creates a Stripe setup intent for the customer.
func (c *Cloud) CreateCustomerPayment(ctx context.Context) (*Response, error) {
	return c.do(ctx, mmclient.POST, c.url("payment"), nil, mmclient.AttachNone)
}

// ConfirmCustomerPayment completes a Stripe setup intent.
func (c *Cloud) ConfirmCustomerPayment(ctx context.Context, stripeSetupIntentID mmclient.Opt[string]) (*Response, error) {
	req := c.newJSONRequest()
	mmclient.AddOpt(req, "stripe_setup_intent_id", stripeSetupIntentID)
	return c.do(ctx, mmclient.POST, c.url("payment", "confirm"), req, mmclient.AttachBody)
}

func (c *Cloud) GetCustomer(ctx context.Context) (*Response, error) {
	return c.do(ctx, mmclient.GET, c.url("customer"), nil, mmclient.AttachNone)
}

type CloudCustomerPatch struct {
	Name             mmclient.Opt[string]
	Email            mmclient.Opt[string]
	ContactFirstName mmclient.Opt[string]
	ContactLastName  mmclient.Opt[string]
	NumEmployees     mmclient.Opt[int]
}

func (c *Cloud) UpdateCustomer(ctx context.Context, patch CloudCustomerPatch) (*Response, error) {
	req := c.newJSONRequest()
	mmclient.AddOpt(req, "name", patch.Name)
	mmclient.AddOpt(req, "email", patch.Email)
	mmclient.AddOpt(req, "contact_first_name", patch.ContactFirstName)
	mmclient.AddOpt(req, "contact_last_name", patch.ContactLastName)
	mmclient.AddOpt(req, "num_employees", patch.NumEmployees)
	return c.do(ctx, mmclient.PUT, c.url("customer"), req, mmclient.AttachBody)
}

type Address struct {
	City       mmclient.Opt[string]
	Country    mmclient.Opt[string]
	Line1      mmclient.Opt[string]
	Line2      mmclient.Opt[string]
	PostalCode mmclient.Opt[string]
	State      mmclient.Opt[string]
}

func (c *Cloud) UpdateCustomerAddress(ctx context.Context, address Address) (*Response, error) {
	req := c.newJSONRequest()
	mmclient.AddOpt(req, "city", address.City)
	mmclient.AddOpt(req, "country", address.Country)
	mmclient.AddOpt(req, "line1", address.Line1)
	mmclient.AddOpt(req, "line2", address.Line2)
	mmclient.AddOpt(req, "postal_code", address.PostalCode)
	mmclient.AddOpt(req, "state", address.State)
	return c.do(ctx, mmclient.PUT, c.url("customer", "address"), req, mmclient.AttachBody)
}
