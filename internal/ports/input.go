package ports

type InputSourcePort interface {
	ReadInputs(path string) ([]string, error)
}
