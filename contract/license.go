// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/licium/liciumd/currency"
	"github.com/licium/liciumd/fault"
	"github.com/licium/liciumd/storage"
	"github.com/licium/liciumd/tokenrecord"
)

// executeBuyLicense - validate payment, forward funds and record the
// license
//
// only the first attached coin is considered; multi denomination
// payment batches are not supported.  Overpayment is accepted in full
// and forwarded as paid, there is no refund path.
func (c *Contract) executeBuyLicense(trx *storage.Transaction, env Env, info MessageInfo, msg *BuyLicenseMsg) (*Response, error) {

	terms, err := c.licensing.GetTerms(msg.TokenId)
	if nil != err {
		return nil, err
	}

	// an empty funds list must be rejected, not indexed
	if 0 == len(info.Funds) {
		return nil, fault.NoFundsProvided
	}
	payment := info.Funds[0]

	if payment.Denom != terms.Price.Denom {
		return nil, fault.WrongPaymentDenomination
	}
	if payment.Amount < terms.Price.Amount {
		return nil, fault.InsufficientPayment
	}

	// the owner may have changed since mint: read the current record
	token, err := c.registry.Get(msg.TokenId)
	if nil != err {
		return nil, err
	}

	err = c.licensing.Record(trx, &tokenrecord.LicenseRecord{
		TokenId:  msg.TokenId,
		Licensee: info.Sender,
		Price:    payment,
	})
	if nil != err {
		return nil, err
	}

	c.log.Infof("license: token: %q  licensee: %q  paid: %s", msg.TokenId, info.Sender, payment)

	response := &Response{
		Messages: []BankMsg{
			{
				ToAddress: token.Owner,
				Amount:    []currency.Coin{payment},
			},
		},
	}
	response.AddAttribute("action", "license")
	response.AddAttribute("token_id", string(msg.TokenId))
	response.AddAttribute("price", payment.String())
	response.AddAttribute("licensee", string(info.Sender))
	return response, nil
}
