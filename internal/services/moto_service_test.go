package services

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/triafrota/tria-backend/internal/domain/entities"
	"github.com/triafrota/tria-backend/internal/domain/errors"
)

var _ = Describe("MotoService", func() {
	var (
		ctx        context.Context
		motoRepo   *fakeMotoRepo
		filialRepo *fakeFilialRepo
		service    *MotoService
		filialID   uint
	)

	BeforeEach(func() {
		ctx = context.Background()
		motoRepo = newFakeMotoRepo()
		filialRepo = newFakeFilialRepo()
		service = NewMotoService(motoRepo, NewMotoValidation(motoRepo, filialRepo), noopLogger{})

		filial := &entities.Filial{Nome: "Filial Centro", IdEndereco: 1}
		Expect(filialRepo.Create(ctx, filial)).To(Succeed())
		filialID = filial.ID
	})

	valida := func() MotoInput {
		return MotoInput{
			Placa:           "abc1d23",
			Modelo:          "CG 160",
			Ano:             2023,
			TipoCombustivel: "Flex",
			IdFilial:        filialID,
		}
	}

	Describe("Create", func() {
		It("armazena a placa normalizada em maiúsculas", func() {
			moto, err := service.Create(ctx, valida())
			Expect(err).NotTo(HaveOccurred())
			Expect(moto.Placa).To(Equal("ABC1D23"))
		})

		It("remove espaços nas bordas da placa", func() {
			input := valida()
			input.Placa = "  abc1d23  "
			moto, err := service.Create(ctx, input)
			Expect(err).NotTo(HaveOccurred())
			Expect(moto.Placa).To(Equal("ABC1D23"))
		})

		It("rejeita placa duplicada mesmo com case e espaços diferentes", func() {
			_, err := service.Create(ctx, valida())
			Expect(err).NotTo(HaveOccurred())

			duplicada := valida()
			duplicada.Placa = " ABC1d23 "
			_, err = service.Create(ctx, duplicada)

			var exists *errors.AlreadyExistsError
			Expect(asError(err, &exists)).To(BeTrue())
			Expect(exists.Campo).To(Equal("Placa"))
		})

		It("rejeita placa em branco", func() {
			input := valida()
			input.Placa = "   "
			_, err := service.Create(ctx, input)

			var empty *errors.EmptyFieldError
			Expect(asError(err, &empty)).To(BeTrue())
		})

		It("rejeita combustível fora da enumeração", func() {
			input := valida()
			input.TipoCombustivel = "Diesel"
			_, err := service.Create(ctx, input)

			var invalid *errors.InvalidFieldError
			Expect(asError(err, &invalid)).To(BeTrue())
		})

		It("aceita combustível sem diferenciar maiúsculas", func() {
			input := valida()
			input.TipoCombustivel = "gasolina"
			_, err := service.Create(ctx, input)
			Expect(err).NotTo(HaveOccurred())
		})

		It("rejeita filial inexistente com NotFound", func() {
			input := valida()
			input.IdFilial = 99
			_, err := service.Create(ctx, input)
			Expect(errors.IsNotFound(err)).To(BeTrue())
		})
	})

	Describe("Update", func() {
		It("mantendo a própria placa não acusa duplicidade", func() {
			moto, err := service.Create(ctx, valida())
			Expect(err).NotTo(HaveOccurred())

			input := valida()
			input.Placa = " abc1D23 "
			input.Modelo = "CG 160 Titan"
			atualizada, err := service.Update(ctx, moto.ID, input)
			Expect(err).NotTo(HaveOccurred())
			Expect(atualizada.Modelo).To(Equal("CG 160 Titan"))
			Expect(atualizada.Placa).To(Equal("ABC1D23"))
		})

		It("rejeita troca para placa de outra moto", func() {
			_, err := service.Create(ctx, valida())
			Expect(err).NotTo(HaveOccurred())

			outra := valida()
			outra.Placa = "XYZ9W87"
			moto, err := service.Create(ctx, outra)
			Expect(err).NotTo(HaveOccurred())

			input := valida()
			input.Placa = "abc1d23"
			_, err = service.Update(ctx, moto.ID, input)
			Expect(errors.IsAlreadyExists(err)).To(BeTrue())
		})

		It("revalida combustível na atualização", func() {
			moto, err := service.Create(ctx, valida())
			Expect(err).NotTo(HaveOccurred())

			input := valida()
			input.TipoCombustivel = "Querosene"
			_, err = service.Update(ctx, moto.ID, input)

			var invalid *errors.InvalidFieldError
			Expect(asError(err, &invalid)).To(BeTrue())
		})
	})

	Describe("GetByPlaca", func() {
		It("normaliza a placa consultada", func() {
			criada, err := service.Create(ctx, valida())
			Expect(err).NotTo(HaveOccurred())

			moto, err := service.GetByPlaca(ctx, " abc1d23 ")
			Expect(err).NotTo(HaveOccurred())
			Expect(moto.ID).To(Equal(criada.ID))
		})

		It("placa desconhecida responde NotFound", func() {
			_, err := service.GetByPlaca(ctx, "ZZZ0Z00")
			Expect(errors.IsNotFound(err)).To(BeTrue())
		})
	})

	Describe("GetFromAno", func() {
		It("filtra por ano maior ou igual", func() {
			antiga := valida()
			antiga.Placa = "OLD0A00"
			antiga.Ano = 2015
			_, err := service.Create(ctx, antiga)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Create(ctx, valida())
			Expect(err).NotTo(HaveOccurred())

			motos, err := service.GetFromAno(ctx, 2020)
			Expect(err).NotTo(HaveOccurred())
			Expect(motos).To(HaveLen(1))
			Expect(motos[0].Ano).To(Equal(2023))
		})
	})
})
