package integrations

// Opener shows a URL to the user.
type Opener interface {
	Open(url string) error
}
