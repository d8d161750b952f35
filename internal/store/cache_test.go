package store_test

import (
	"context"
	"database/sql"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zhakazx/animeinfo/internal/store"
	"github.com/zhakazx/animeinfo/internal/store/migrations"
)

var _ = Describe("CacheStore", func() {
	var (
		ctx   context.Context
		s     *store.Store
		db    *sql.DB
		clock time.Time
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())

		err = migrations.Run(ctx, db)
		Expect(err).NotTo(HaveOccurred())

		s = store.NewStore(db)
		clock = time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
		s.Cache().SetClock(func() time.Time { return clock })
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	Context("Get", func() {
		// Given an empty cache
		// When we look up a key
		// Then it is reported as a miss without error
		It("should miss on an unknown key", func() {
			// Act
			body, ok, err := s.Cache().Get(ctx, "jikan:/anime/1")

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
			Expect(body).To(BeNil())
		})

		// Given a stored entry
		// When we look it up before it expires
		// Then the body comes back unchanged
		It("should return a fresh entry", func() {
			// Arrange
			Expect(s.Cache().Set(ctx, "jikan:/anime/1", []byte(`{"data":{"mal_id":1}}`), time.Hour)).To(Succeed())

			// Act
			body, ok, err := s.Cache().Get(ctx, "jikan:/anime/1")

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(string(body)).To(Equal(`{"data":{"mal_id":1}}`))
		})

		// Given a stored entry
		// When its TTL has passed
		// Then it is a miss
		It("should not return an expired entry", func() {
			// Arrange
			Expect(s.Cache().Set(ctx, "jikan:/anime?q=a", []byte("{}"), 5*time.Minute)).To(Succeed())
			clock = clock.Add(5 * time.Minute)

			// Act
			_, ok, err := s.Cache().Get(ctx, "jikan:/anime?q=a")

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
		})
	})

	Context("Set", func() {
		It("should overwrite an existing entry and its expiry", func() {
			// Arrange
			Expect(s.Cache().Set(ctx, "k", []byte("old"), time.Minute)).To(Succeed())

			// Act
			Expect(s.Cache().Set(ctx, "k", []byte("new"), time.Hour)).To(Succeed())
			clock = clock.Add(30 * time.Minute)

			// Assert
			body, ok, err := s.Cache().Get(ctx, "k")
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(string(body)).To(Equal("new"))

			n, err := s.Cache().Count(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(1))
		})
	})

	Context("Delete", func() {
		It("should remove an entry", func() {
			Expect(s.Cache().Set(ctx, "k", []byte("v"), time.Hour)).To(Succeed())

			Expect(s.Cache().Delete(ctx, "k")).To(Succeed())

			_, ok, err := s.Cache().Get(ctx, "k")
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
		})
	})

	Context("PurgeExpired", func() {
		// Given one expired and one fresh entry
		// When purging
		// Then only the expired entry is removed
		It("should remove only expired entries", func() {
			// Arrange
			Expect(s.Cache().Set(ctx, "short", []byte("v"), time.Minute)).To(Succeed())
			Expect(s.Cache().Set(ctx, "long", []byte("v"), 24*time.Hour)).To(Succeed())
			clock = clock.Add(time.Hour)

			// Act
			removed, err := s.Cache().PurgeExpired(ctx)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(removed).To(BeEquivalentTo(1))
			n, err := s.Cache().Count(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(1))
		})
	})
})
