package session

import (
	"errors"
	"sync"
	"testing"

	"server/internal/adgen"
)

func TestStoreCreateStartsAllPending(t *testing.T) {
	store := NewStore()
	id := store.Create(adgen.CampaignOptions{ProductTitle: "Solar Fizz"})

	snap, err := store.Get(id)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if snap.Status != StatusRunning {
		t.Fatalf("Status = %q, want running", snap.Status)
	}
	if len(snap.Items) != adgen.CampaignSize {
		t.Fatalf("items = %d, want %d", len(snap.Items), adgen.CampaignSize)
	}
	for i, item := range snap.Items {
		if item.Status != adgen.ItemStatusPending {
			t.Fatalf("item %d = %#v, want pending", i, item)
		}
	}
	if snap.Options.ProductTitle != "Solar Fizz" {
		t.Fatalf("Options not retained: %#v", snap.Options)
	}
}

func TestStoreGetUnknownID(t *testing.T) {
	store := NewStore()
	if _, err := store.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestStoreSetItemTransitionsExactlyOnce(t *testing.T) {
	store := NewStore()
	id := store.Create(adgen.CampaignOptions{})

	store.SetItem(id, 2, adgen.ItemResult{Status: adgen.ItemStatusDone, URL: "data:image/png;base64,eA=="})
	store.SetItem(id, 2, adgen.ItemResult{Status: adgen.ItemStatusError, Message: "late write"})

	snap, _ := store.Get(id)
	if snap.Items[2].Status != adgen.ItemStatusDone || snap.Items[2].URL == "" {
		t.Fatalf("item 2 = %#v, want first write retained", snap.Items[2])
	}
}

func TestStoreSetItemIgnoresOutOfRange(t *testing.T) {
	store := NewStore()
	id := store.Create(adgen.CampaignOptions{})

	store.SetItem(id, -1, adgen.ItemResult{Status: adgen.ItemStatusDone})
	store.SetItem(id, adgen.CampaignSize, adgen.ItemResult{Status: adgen.ItemStatusDone})
	store.SetItem("unknown", 0, adgen.ItemResult{Status: adgen.ItemStatusDone})

	snap, _ := store.Get(id)
	for i, item := range snap.Items {
		if item.Status != adgen.ItemStatusPending {
			t.Fatalf("item %d unexpectedly written: %#v", i, item)
		}
	}
}

func TestStoreFailMarksPendingItems(t *testing.T) {
	store := NewStore()
	id := store.Create(adgen.CampaignOptions{})

	store.SetItem(id, 0, adgen.ItemResult{Status: adgen.ItemStatusDone, URL: "data:image/png;base64,eA=="})
	store.Fail(id, "research failed: key rejected")

	snap, _ := store.Get(id)
	if snap.Status != StatusFailed {
		t.Fatalf("Status = %q, want failed", snap.Status)
	}
	if snap.Items[0].Status != adgen.ItemStatusDone {
		t.Fatalf("completed item overwritten: %#v", snap.Items[0])
	}
	for i := 1; i < adgen.CampaignSize; i++ {
		item := snap.Items[i]
		if item.Status != adgen.ItemStatusError || item.Message != "research failed: key rejected" {
			t.Fatalf("item %d = %#v, want research error", i, item)
		}
	}
}

func TestStoreCompleteOnlyFromRunning(t *testing.T) {
	store := NewStore()
	id := store.Create(adgen.CampaignOptions{})

	store.Fail(id, "boom")
	store.Complete(id)

	snap, _ := store.Get(id)
	if snap.Status != StatusFailed {
		t.Fatalf("Status = %q, want failed to stick", snap.Status)
	}
}

func TestStoreConcurrentSlotWrites(t *testing.T) {
	store := NewStore()
	id := store.Create(adgen.CampaignOptions{})

	var wg sync.WaitGroup
	for i := 0; i < adgen.CampaignSize; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store.SetItem(id, i, adgen.ItemResult{Status: adgen.ItemStatusDone, URL: "data:image/png;base64,eA=="})
		}(i)
	}
	wg.Wait()
	store.Complete(id)

	snap, _ := store.Get(id)
	if snap.Status != StatusCompleted {
		t.Fatalf("Status = %q, want completed", snap.Status)
	}
	for i, item := range snap.Items {
		if item.Status != adgen.ItemStatusDone {
			t.Fatalf("item %d = %#v, want done", i, item)
		}
	}
}
