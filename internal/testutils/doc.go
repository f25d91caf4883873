// Package testutils provides testing utilities for the account service.
//
// This package contains helpers for:
//  1. Creating test Account entities
//  2. Setting up test servers for API testing
//  3. Asserting API responses, including the security headers every
//     response must carry
//
// # Test Accounts
//
//	// Create an account with default values:
//	account := testutils.NewTestAccount()
//
//	// Create an account with specific options:
//	account := testutils.NewTestAccount(
//	    testutils.WithAccountName("Jane"),
//	    testutils.WithAccountPhone(""),
//	)
//
// # API Assertions
//
//	resp, err := http.Get(server.URL + "/accounts/0")
//	require.NoError(t, err)
//	testutils.CleanupResponseBody(t, resp)
//	testutils.AssertErrorResponse(t, resp, http.StatusNotFound, "could not be found")
package testutils
