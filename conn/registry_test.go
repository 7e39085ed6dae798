package conn

import "testing"

func TestRegistryStartsDisconnected(t *testing.T) {
	r := NewRegistry("cameras", "broker")
	for _, st := range r.Snapshot() {
		if st.State != StateDisconnected {
			t.Fatalf("%s should start disconnected, got %s", st.Name, st.State)
		}
	}
}

func TestRegistryIgnoresDuplicateAndEmptyNames(t *testing.T) {
	r := NewRegistry("cameras", "cameras", "")
	if r.Len() != 1 {
		t.Fatalf("expected 1 connection, got %d", r.Len())
	}
}

func TestConnectCompleteLifecycle(t *testing.T) {
	r := NewRegistry("cameras")

	gen, ok := r.Connect("cameras")
	if !ok {
		t.Fatal("connect on disconnected entry should succeed")
	}
	if st, _ := r.State("cameras"); st != StateConnecting {
		t.Fatalf("state = %s, want connecting", st)
	}

	// Connect while connecting is a no-op.
	if _, ok := r.Connect("cameras"); ok {
		t.Fatal("connect while connecting should be ignored")
	}

	if !r.Complete("cameras", gen) {
		t.Fatal("complete with matching generation should land")
	}
	if st, _ := r.State("cameras"); st != StateConnected {
		t.Fatalf("state = %s, want connected", st)
	}

	// Connect while connected is a no-op.
	if _, ok := r.Connect("cameras"); ok {
		t.Fatal("connect while connected should be ignored")
	}
}

func TestDisconnectCancelsPendingConnect(t *testing.T) {
	r := NewRegistry("cameras")

	gen, _ := r.Connect("cameras")
	if !r.Disconnect("cameras") {
		t.Fatal("disconnect while connecting should change state")
	}

	// The stale completion must not land.
	if r.Complete("cameras", gen) {
		t.Fatal("stale complete landed after disconnect")
	}
	if st, _ := r.State("cameras"); st != StateDisconnected {
		t.Fatalf("state = %s, want disconnected", st)
	}
}

func TestStaleCompleteAfterReconnect(t *testing.T) {
	r := NewRegistry("cameras")

	oldGen, _ := r.Connect("cameras")
	r.Disconnect("cameras")
	newGen, _ := r.Connect("cameras")

	if r.Complete("cameras", oldGen) {
		t.Fatal("old generation must not complete the new connect")
	}
	if !r.Complete("cameras", newGen) {
		t.Fatal("current generation should complete")
	}
}

func TestDisconnectNoOps(t *testing.T) {
	r := NewRegistry("cameras")
	if r.Disconnect("cameras") {
		t.Fatal("disconnect on disconnected entry should be a no-op")
	}
	if r.Disconnect("unknown") {
		t.Fatal("disconnect on unknown entry should be a no-op")
	}
}

func TestUnknownNameOperations(t *testing.T) {
	r := NewRegistry("cameras")
	if _, ok := r.Connect("unknown"); ok {
		t.Fatal("connect on unknown name should fail")
	}
	if _, ok := r.State("unknown"); ok {
		t.Fatal("state lookup on unknown name should fail")
	}
}

func TestSummaryDerivation(t *testing.T) {
	r := NewRegistry("a", "b", "c")

	sum := r.Summary()
	if sum.State != StateDisconnected || sum.Label() != "Disconnected" {
		t.Fatalf("all-down summary = %+v (%s)", sum, sum.Label())
	}

	genA, _ := r.Connect("a")
	r.Complete("a", genA)
	sum = r.Summary()
	if sum.State != StateConnected || sum.Label() != "Connected 1/3" {
		t.Fatalf("partial summary = %+v (%s)", sum, sum.Label())
	}

	// Any connecting entry dominates.
	r.Connect("b")
	sum = r.Summary()
	if sum.State != StateConnecting || sum.Label() != "Connecting..." {
		t.Fatalf("connecting summary = %+v (%s)", sum, sum.Label())
	}

	mustConnectGen(t, r, "b")
	genC, _ := r.Connect("c")
	r.Complete("c", genC)
	sum = r.Summary()
	if sum.State != StateConnected || sum.Label() != "Connected" {
		t.Fatalf("full summary = %+v (%s)", sum, sum.Label())
	}
}

// mustConnectGen drives a connection all the way to connected.
func mustConnectGen(t *testing.T, r *Registry, name string) {
	t.Helper()
	if st, _ := r.State(name); st == StateConnecting {
		r.Disconnect(name)
	}
	gen, ok := r.Connect(name)
	if !ok {
		t.Fatalf("connect %s failed", name)
	}
	if !r.Complete(name, gen) {
		t.Fatalf("complete %s failed", name)
	}
}
