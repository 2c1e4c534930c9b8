// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/licium/liciumd/storage"
	"github.com/licium/liciumd/tokenrecord"
)

// executeMint - create a token, its content linkage and its licensing
// terms
//
// uniqueness is enforced at two independent points: the token id
// space for direct lookup and the fingerprint space for content based
// resolution; either collision aborts the command so that no store
// advances
func (c *Contract) executeMint(trx *storage.Transaction, env Env, info MessageInfo, msg *MintMsg) (*Response, error) {

	owner := msg.Owner
	if "" == owner {
		owner = info.Sender
	}

	err := c.registry.Create(trx, msg.TokenId, &tokenrecord.TokenRecord{
		Owner:       owner,
		Name:        msg.Name,
		Description: msg.Description,
		Image:       msg.Image,
	})
	if nil != err {
		return nil, err
	}

	err = c.index.Link(trx, &tokenrecord.ContentRecord{
		TokenId:      msg.TokenId,
		Fingerprint:  msg.Fingerprint,
		MetaHash:     msg.MetaHash,
		DataHash:     msg.DataHash,
		InstanceHash: msg.InstanceHash,
		TopHash:      msg.TopHash,
	})
	if nil != err {
		return nil, err
	}

	err = c.licensing.SetTerms(trx, &tokenrecord.LicensingTerms{
		TokenId:    msg.TokenId,
		LicenseURI: msg.LicenseURI,
		Price:      msg.LicensePrice,
	})
	if nil != err {
		return nil, err
	}

	c.log.Infof("mint: token: %q  iscc: %q  owner: %q", msg.TokenId, msg.Fingerprint, owner)

	response := &Response{}
	response.AddAttribute("action", "mint")
	response.AddAttribute("token_id", string(msg.TokenId))
	response.AddAttribute("name", msg.Name)
	response.AddAttribute("iscc", msg.Fingerprint)
	response.AddAttribute("tophash", msg.TopHash)
	response.AddAttribute("owner", string(owner))
	return response, nil
}
