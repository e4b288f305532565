package entities

import "testing"

func TestDecodeJobs(t *testing.T) {
	t.Run("empty payload", func(t *testing.T) {
		jobs, err := DecodeJobs(nil)
		if err != nil {
			t.Fatalf("DecodeJobs: %v", err)
		}
		if len(jobs) != 0 {
			t.Fatalf("expected empty collection, got %#v", jobs)
		}
	})

	t.Run("legacy cloudLink becomes cloudLinks", func(t *testing.T) {
		jobs, err := DecodeJobs([]byte(`[{"id":"j1","name":"Clipe","cloudLink":"https://drive/x"}]`))
		if err != nil {
			t.Fatalf("DecodeJobs: %v", err)
		}
		j := jobs[0]
		if len(j.CloudLinks) != 1 || j.CloudLinks[0] != "https://drive/x" {
			t.Fatalf("expected migrated cloud link, got %#v", j.CloudLinks)
		}
		if j.Payments == nil || j.ObservationsLog == nil {
			t.Fatalf("expected empty slices, got %#v", j)
		}
	})

	t.Run("modern cloudLinks win over the legacy field", func(t *testing.T) {
		jobs, err := DecodeJobs([]byte(`[{"id":"j1","cloudLinks":["a"],"cloudLink":"b"}]`))
		if err != nil {
			t.Fatalf("DecodeJobs: %v", err)
		}
		if len(jobs[0].CloudLinks) != 1 || jobs[0].CloudLinks[0] != "a" {
			t.Fatalf("unexpected cloud links %#v", jobs[0].CloudLinks)
		}
	})

	t.Run("missing id is generated", func(t *testing.T) {
		jobs, err := DecodeJobs([]byte(`[{"name":"Sem id"}]`))
		if err != nil {
			t.Fatalf("DecodeJobs: %v", err)
		}
		if jobs[0].ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		if _, err := DecodeJobs([]byte("{nope")); err == nil {
			t.Fatalf("expected decode error")
		}
	})
}

func TestDecodeDrafts(t *testing.T) {
	t.Run("legacy content becomes a script line", func(t *testing.T) {
		drafts, err := DecodeDrafts([]byte(`[{"id":"d1","title":"Roteiro","content":"Cena de abertura"}]`))
		if err != nil {
			t.Fatalf("DecodeDrafts: %v", err)
		}
		d := drafts[0]
		if d.Type != DraftTypeScript {
			t.Fatalf("expected default script type, got %q", d.Type)
		}
		if len(d.ScriptLines) != 1 || d.ScriptLines[0].Scene != "1" || d.ScriptLines[0].Description != "Cena de abertura" {
			t.Fatalf("unexpected script lines %#v", d.ScriptLines)
		}
		if d.Attachments == nil {
			t.Fatalf("expected empty attachments slice")
		}
	})

	t.Run("typed draft is untouched", func(t *testing.T) {
		drafts, err := DecodeDrafts([]byte(`[{"id":"d1","type":"TEXT","content":"nota","scriptLines":[]}]`))
		if err != nil {
			t.Fatalf("DecodeDrafts: %v", err)
		}
		d := drafts[0]
		if d.Type != DraftTypeText || len(d.ScriptLines) != 0 {
			t.Fatalf("unexpected draft %#v", d)
		}
	})
}
