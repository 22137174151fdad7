package convert

// HTMLConverter passes HTML sources through untouched.
type HTMLConverter struct{}

func (c *HTMLConverter) Convert(data []byte) (string, error) {
	return string(data), nil
}
