package units

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain"
)

type unitsSuite struct {
	suite.Suite
}

func TestUnitsSuite(t *testing.T) {
	suite.Run(t, new(unitsSuite))
}

func (s *unitsSuite) TestToTinybar() {
	cases := []struct {
		name  string
		human string
		want  Tinybar
		err   error
	}{
		{name: "whole amount", human: "50", want: "5000000000"},
		{name: "fractional amount", human: "0.5", want: "50000000"},
		{name: "full precision", human: "1.23456789", want: "123456789"},
		{name: "surrounding whitespace", human: " 12 ", want: "1200000000"},
		{name: "nine fractional digits", human: "0.123456789", err: domain.ErrPrecisionLoss},
		{name: "zero", human: "0", err: domain.ErrInvalidAmount},
		{name: "negative", human: "-1", err: domain.ErrInvalidAmount},
		{name: "garbage", human: "1.2.3", err: domain.ErrInvalidAmount},
		{name: "empty", human: "", err: domain.ErrInvalidAmount},
	}

	for _, c := range cases {
		got, err := ToTinybar(c.human)
		if c.err != nil {
			s.ErrorIs(err, c.err, c.name)
		} else {
			s.NoError(err, c.name)
			s.Equal(c.want, got, c.name)
		}
	}
}

func (s *unitsSuite) TestToWeibar() {
	cases := []struct {
		name  string
		human string
		want  Weibar
		err   error
	}{
		{name: "whole amount", human: "50", want: "50000000000000000000"},
		{name: "eighteen fractional digits", human: "0.000000000000000001", want: "1"},
		{name: "nineteen fractional digits", human: "0.0000000000000000001", err: domain.ErrPrecisionLoss},
		{name: "zero", human: "0.0", err: domain.ErrInvalidAmount},
	}

	for _, c := range cases {
		got, err := ToWeibar(c.human)
		if c.err != nil {
			s.ErrorIs(err, c.err, c.name)
		} else {
			s.NoError(err, c.name)
			s.Equal(c.want, got, c.name)
		}
	}
}

func (s *unitsSuite) TestTinybarWeibarRoundTrip() {
	// widening then narrowing must always return the original amount
	for _, t := range []Tinybar{"1", "123456789", "5000000000", "18446744073709551615"} {
		w, err := TinybarToWeibar(t)
		s.NoError(err)
		back, err := WeibarToTinybar(w)
		s.NoError(err)
		s.Equal(t, back)
	}
}

func (s *unitsSuite) TestTinybarToWeibar() {
	w, err := TinybarToWeibar("5000000000")
	s.NoError(err)
	s.Equal(Weibar("50000000000000000000"), w)

	_, err = TinybarToWeibar("0")
	s.ErrorIs(err, domain.ErrInvalidAmount)

	_, err = TinybarToWeibar("not-a-number")
	s.ErrorIs(err, domain.ErrInvalidAmount)
}

func (s *unitsSuite) TestWeibarToTinybar() {
	t, err := WeibarToTinybar("50000000000000000000")
	s.NoError(err)
	s.Equal(Tinybar("5000000000"), t)

	// one weibar of sub-unit dust must not be truncated away
	_, err = WeibarToTinybar("50000000000000000001")
	s.ErrorIs(err, domain.ErrPrecisionLoss)

	_, err = WeibarToTinybar("-10000000000")
	s.ErrorIs(err, domain.ErrInvalidAmount)
}

func (s *unitsSuite) TestAddTinybar() {
	sum, err := AddTinybar("100", "23")
	s.NoError(err)
	s.Equal(Tinybar("123"), sum)

	// beyond uint64 range, must not wrap
	sum, err = AddTinybar("18446744073709551615", "1")
	s.NoError(err)
	s.Equal(Tinybar("18446744073709551616"), sum)

	_, err = AddTinybar("100", "0")
	s.ErrorIs(err, domain.ErrInvalidAmount)

	_, err = AddTinybar("", "100")
	s.ErrorIs(err, domain.ErrInvalidAmount)
}
