package subnet

import (
	"errors"
	"testing"
)

func TestSplit_ClassCInto50HostSubnets(t *testing.T) {
	plan, err := Split("192.168.1.0/24", 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 50 hosts need 6 host bits (2^6 = 64 >= 52), so /26
	if plan.NewPrefix != 26 {
		t.Errorf("expected new prefix /26, got /%d", plan.NewPrefix)
	}
	if plan.SubnetCount != 4 {
		t.Errorf("expected 4 subnets, got %d", plan.SubnetCount)
	}
	if plan.UsableHosts != 62 {
		t.Errorf("expected 62 usable hosts per subnet, got %d", plan.UsableHosts)
	}
	if plan.Mask != "255.255.255.192" {
		t.Errorf("expected mask 255.255.255.192, got %s", plan.Mask)
	}

	first := plan.Subnets[0]
	if first.Network != "192.168.1.0" || first.Broadcast != "192.168.1.63" {
		t.Errorf("unexpected first subnet bounds: %+v", first)
	}
	if first.FirstHost != "192.168.1.1" || first.LastHost != "192.168.1.62" {
		t.Errorf("unexpected first subnet host range: %+v", first)
	}

	last := plan.Subnets[3]
	if last.Network != "192.168.1.192" || last.Broadcast != "192.168.1.255" {
		t.Errorf("unexpected last subnet bounds: %+v", last)
	}
}

func TestSplit_MasksHostBitsInInput(t *testing.T) {
	plan, err := Split("10.0.0.37/24", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Parent != "10.0.0.0/24" {
		t.Errorf("expected parent 10.0.0.0/24, got %s", plan.Parent)
	}
}

func TestSplit_SubnetLargerThanParent(t *testing.T) {
	_, err := Split("192.168.1.0/30", 100)
	if !errors.Is(err, ErrBlockTooSmall) {
		t.Fatalf("expected ErrBlockTooSmall, got %v", err)
	}
}

func TestSplit_InvalidCIDR(t *testing.T) {
	for _, cidr := range []string{"banana", "192.168.1.0", "2001:db8::/64"} {
		if _, err := Split(cidr, 10); !errors.Is(err, ErrInvalidCIDR) {
			t.Errorf("%q: expected ErrInvalidCIDR, got %v", cidr, err)
		}
	}
}

func TestSplit_InvalidHostCount(t *testing.T) {
	for _, hosts := range []int{0, -5} {
		if _, err := Split("192.168.1.0/24", hosts); !errors.Is(err, ErrInvalidHostCount) {
			t.Errorf("hosts=%d: expected ErrInvalidHostCount, got %v", hosts, err)
		}
	}
}

func TestSplit_TooManySubnets(t *testing.T) {
	// /8 into /30s would be 4M subnets
	_, err := Split("10.0.0.0/8", 2)
	if !errors.Is(err, ErrTooManySubnets) {
		t.Fatalf("expected ErrTooManySubnets, got %v", err)
	}
}

func TestSplit_SingleHostSubnets(t *testing.T) {
	plan, err := Split("192.168.1.0/24", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 1 host still needs network + broadcast, so /30 with 2 usable
	if plan.NewPrefix != 30 {
		t.Errorf("expected /30, got /%d", plan.NewPrefix)
	}
	if plan.UsableHosts != 2 {
		t.Errorf("expected 2 usable hosts, got %d", plan.UsableHosts)
	}
	if plan.SubnetCount != 64 {
		t.Errorf("expected 64 subnets, got %d", plan.SubnetCount)
	}
}
