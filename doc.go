// Package bhexpress provides a Go client for the BHExpress REST API.
//
// The client builds request URLs under {base URL}/api/{version}, sends the
// token in the Authorization header, encodes request bodies as JSON and
// reports every failure as an [*Error].
//
// Basic usage:
//
//	client, err := bhexpress.New(bhexpress.WithToken("your-token"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.Get(ctx, "/boletas", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(resp.Text())
//
// Without [WithToken] the token is read from BHEXPRESS_API_TOKEN. The base
// URL defaults to BHEXPRESS_API_URL, or https://bhexpress.cl when unset.
//
// By default only status 200 counts as success. Use
// WithRaiseForStatus(false) for endpoints answering 201 or 204, then check
// [Response.StatusCode] yourself.
package bhexpress
