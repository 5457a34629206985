package hidden

import "github.com/sublee/inner"

type secret struct{ N int }

type Public struct{ N int }

func Find() inner.Option[secret] {
	return inner.Some(secret{N: 1})
}

func FindPublic() inner.Option[Public] {
	return inner.Some(Public{N: 1})
}
