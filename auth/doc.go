// Copyright (c) 2025 Baydre.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides credentials, session tokens, and voter identity.

# Session Tokens

Session tokens use HMAC-SHA256 to sign the user ID:

	token := auth.GenerateSessionToken(userID, secret)
	userID, err := auth.ParseSessionToken(token, secret)

The token is "<userID>.<signature>" with a URL-safe base64 signature.
Since validation only needs the secret, no session table exists.

# Passwords

Credential hashes use bcrypt at cost 12:

	hash, err := auth.HashPassword(password)
	ok := auth.CheckPassword(hash, password)

# Voter Identity

Every vote is keyed by a voter identity. Authenticated callers use
their account ID; anonymous visitors get a deterministic fingerprint:

	identity := auth.ResolveVoter(userID, ip, userAgent, pollID, salt)

The fingerprint is an HMAC-SHA256 over (ip, user agent, poll ID),
"anon-" prefixed, 32 hex chars. Identical inputs always produce the
same identity, which is what lets the vote ledger reject duplicates.
Different polls produce different identities, so an anonymous visitor
can vote on any number of independent polls.

# Authorization

	auth.CanMutatePoll(callerID, ownerID)

True only for the poll's creator. Read access is not gated here: poll
detail is public, and the owner-only listing is enforced by requiring
a session plus the store's owner filter.

# ID Generation

Database record IDs are UUIDs:

	id := auth.NewID()
*/
package auth
