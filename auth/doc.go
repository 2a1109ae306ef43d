// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides bearer token issuance and verification.

# Token Issuance

Login tokens are HS256-signed JWTs carrying only registered claims:

	token, err := auth.IssueToken(username, cfg)

Subject is the username, issuer and audience come from config, and the
token expires 2 hours after issuance. Nothing is stored server-side;
validity is proven entirely by the signature and claim checks.

# Connection Tokens

The realtime channel uses short-lived (1 hour) tokens with subject
"connection", handed out anonymously by the negotiate endpoint:

	token, err := auth.IssueConnectionToken(cfg)

# Verification

Header extraction and validation are separate steps:

	raw, err := auth.FromHeader(r.Header.Get("Authorization"))
	claims, err := auth.VerifyToken(raw, cfg)

or combined:

	claims, err := auth.Authorize(r.Header.Get("Authorization"), cfg)

FromHeader fails with ErrMissingHeader or ErrMissingBearerPrefix.
VerifyToken checks signature (HS256 only), issuer, audience, and expiry,
and reports every failure as ErrInvalidToken.
*/
package auth
